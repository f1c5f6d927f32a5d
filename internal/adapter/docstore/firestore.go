package docstore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreConfig contém as configurações de acesso ao Firestore
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

// NewFirestoreConfigFromEnv cria a configuração a partir de variáveis de ambiente
func NewFirestoreConfigFromEnv() *FirestoreConfig {
	return &FirestoreConfig{
		ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
	}
}

// FirestoreStore implementa Store sobre o Cloud Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore inicializa o app Firebase e abre o cliente Firestore
func NewFirestoreStore(ctx context.Context, cfg *FirestoreConfig) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir firestore: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) buildQuery(q Query) firestore.Query {
	fq := s.client.Collection(q.Path).Query
	for _, f := range q.Filters {
		fq = fq.Where(f.Field, "==", f.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy, dir)
	}
	return fq
}

// GetOnce executa a consulta uma única vez
func (s *FirestoreStore) GetOnce(ctx context.Context, q Query) ([]Document, error) {
	snaps, err := s.buildQuery(q).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar %s: %w", q.Path, err)
	}

	docs := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Get lê um documento pelo id
func (s *FirestoreStore) Get(ctx context.Context, path, id string) (Document, error) {
	snap, err := s.client.Collection(path).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("erro ao ler %s/%s: %w", path, id, err)
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

// Add cria um documento com id gerado pelo banco
func (s *FirestoreStore) Add(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(path).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("erro ao criar documento em %s: %w", path, err)
	}
	return ref.ID, nil
}

// Set grava um documento por inteiro, opcionalmente com merge
func (s *FirestoreStore) Set(ctx context.Context, path, id string, data map[string]interface{}, merge bool) error {
	ref := s.client.Collection(path).Doc(id)
	var err error
	if merge {
		_, err = ref.Set(ctx, data, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, data)
	}
	if err != nil {
		return fmt.Errorf("erro ao gravar %s/%s: %w", path, id, err)
	}
	return nil
}

// Update aplica campos parciais a um documento existente
func (s *FirestoreStore) Update(ctx context.Context, path, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if _, err := s.client.Collection(path).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("erro ao atualizar %s/%s: %w", path, id, err)
	}
	return nil
}

// Delete remove um documento
func (s *FirestoreStore) Delete(ctx context.Context, path, id string) error {
	if _, err := s.client.Collection(path).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("erro ao excluir %s/%s: %w", path, id, err)
	}
	return nil
}

// Subscribe registra um listener de snapshots para a consulta. O listener
// roda em uma goroutine própria até o cancelamento; erros são repassados a
// onError sem derrubar a assinatura das demais coleções.
func (s *FirestoreStore) Subscribe(q Query, onSnapshot func([]Document), onError func(error)) (UnsubscribeFunc, error) {
	ctx, cancel := context.WithCancel(context.Background())
	iter := s.buildQuery(q).Snapshots(ctx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				onError(err)
				return
			}

			ds, err := snap.Documents.GetAll()
			if err != nil {
				onError(err)
				return
			}
			docs := make([]Document, 0, len(ds))
			for _, d := range ds {
				docs = append(docs, Document{ID: d.Ref.ID, Data: d.Data()})
			}
			onSnapshot(docs)
		}
	}()

	return func() { cancel() }, nil
}

// Close fecha o cliente Firestore
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
