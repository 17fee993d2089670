package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"certviewer/internal/cache"
	"certviewer/internal/model"
	"certviewer/internal/repository"
	"certviewer/internal/storage"
)

// maxDocumentSize bounds how much of a certificate document is read into memory.
const maxDocumentSize = 5 << 20

// CertificateService is the certificate store consumed by the award pages.
type CertificateService interface {
	// Award returns the renderable view of a certificate.
	Award(ctx context.Context, id string) (*model.Award, error)

	// AwardJSON returns the signed certificate document exactly as stored.
	AwardJSON(ctx context.Context, id string) (json.RawMessage, error)
}

type certificateService struct {
	repo  repository.CertificateRepository
	store storage.Storage
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCertificateService constructs a CertificateService. A nil cache disables caching.
func NewCertificateService(repo repository.CertificateRepository, store storage.Storage, c cache.Cache, ttl time.Duration, log *zap.Logger) CertificateService {
	if c == nil {
		c = cache.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &certificateService{repo: repo, store: store, cache: c, ttl: ttl, log: log}
}

func (s *certificateService) Award(ctx context.Context, id string) (*model.Award, error) {
	cert, err := s.find(ctx, "award", id)
	if err != nil {
		return nil, err
	}
	return &model.Award{
		CertificateID: cert.ID,
		Name:          cert.RecipientName,
		Title:         cert.Title,
		Subtitle:      cert.Subtitle,
		Description:   cert.Description,
		Organization:  cert.IssuerName,
		IssuedOn:      cert.IssuedOn.UTC().Format("2006-01-02"),
		TransactionID: cert.TransactionID,
		Revoked:       cert.Revoked,
	}, nil
}

func (s *certificateService) AwardJSON(ctx context.Context, id string) (json.RawMessage, error) {
	key := "certificate:" + id
	if b, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("certificate cache read failed", zap.String("certificate_id", id), zap.Error(err))
	} else if ok {
		return json.RawMessage(b), nil
	}

	cert, err := s.find(ctx, "award json", id)
	if err != nil {
		return nil, err
	}
	doc, err := readDocument(ctx, s.store, cert.DocumentKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, &Error{Op: "award json", ID: id, Err: ErrDocumentNotFound}
		}
		return nil, err
	}
	if !json.Valid(doc) {
		return nil, &Error{Op: "award json", ID: id, Err: ErrInvalidDocument}
	}

	if err := s.cache.Set(ctx, key, doc, s.ttl); err != nil {
		s.log.Warn("certificate cache write failed", zap.String("certificate_id", id), zap.Error(err))
	}
	return json.RawMessage(doc), nil
}

func (s *certificateService) find(ctx context.Context, op, id string) (*model.Certificate, error) {
	if id == "" {
		return nil, &Error{Op: op, Err: ErrIDRequired}
	}
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &Error{Op: op, ID: id, Err: ErrCertificateNotFound}
		}
		return nil, fmt.Errorf("find certificate %s: %w", id, err)
	}
	return cert, nil
}

// readDocument fetches a whole certificate document from object storage.
func readDocument(ctx context.Context, store storage.Storage, key string) ([]byte, error) {
	rc, _, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if n > maxDocumentSize {
		return nil, fmt.Errorf("read document: %s exceeds %d bytes", key, maxDocumentSize)
	}
	return buf.Bytes(), nil
}
