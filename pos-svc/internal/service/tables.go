package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/logger"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

type TableService struct {
	repo TableRepository
}

func NewTableService(repo TableRepository) *TableService {
	return &TableService{repo: repo}
}

func (s *TableService) Create(ctx context.Context, in domain.TableInput) (*domain.Table, error) {
	table := &domain.Table{ID: uuid.New(), Name: in.Name, TotalPax: in.TotalPax}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.Table], error) {
	items, total, err := s.repo.ListTables(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.Table]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *TableService) Get(ctx context.Context, id uuid.UUID) (*domain.Table, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgTableNotFound)
	}
	return table, nil
}

func (s *TableService) Update(ctx context.Context, id uuid.UUID, patch domain.TablePatch) (*domain.Table, error) {
	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		table.Name = *patch.Name
	}
	if patch.TotalPax != nil {
		table.TotalPax = *patch.TotalPax
	}
	if err := s.repo.UpdateTable(ctx, table); err != nil {
		return nil, notFound(err, domain.MsgTableNotFound)
	}
	return table, nil
}

func (s *TableService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteTable(ctx, id)
	return deleted(rows, err, domain.MsgTableNotFound)
}

type TableSessionService struct {
	repo   TableSessionRepository
	tables TableRepository
	qr     QRGenerator
	events eventSink
}

func NewTableSessionService(
	repo TableSessionRepository,
	tables TableRepository,
	qr QRGenerator,
	publisher EventPublisher,
	log *logger.Logger,
) *TableSessionService {
	return &TableSessionService{
		repo:   repo,
		tables: tables,
		qr:     qr,
		events: newEventSink(publisher, log),
	}
}

func (s *TableSessionService) checkTable(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tables.GetTable(ctx, id); err != nil {
		return notFound(err, domain.MsgTableNotFound)
	}
	return nil
}

func (s *TableSessionService) Create(ctx context.Context, in domain.TableSessionInput) (*domain.TableSession, error) {
	if err := s.checkTable(ctx, in.TableNo); err != nil {
		return nil, err
	}
	session := &domain.TableSession{
		ID:      uuid.New(),
		TableNo: in.TableNo,
		Pax:     in.Pax,
		Status:  in.Status,
		Total:   in.Total,
		Version: 1,
	}
	if err := s.repo.CreateTableSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *TableSessionService) List(ctx context.Context, filter domain.TextFilter, params pagination.Params) (pagination.Page[domain.TableSession], error) {
	items, total, err := s.repo.ListTableSessions(ctx, filter, params.Window())
	if err != nil {
		return pagination.Page[domain.TableSession]{}, err
	}
	return pagination.NewPage(items, params, total), nil
}

func (s *TableSessionService) Get(ctx context.Context, id uuid.UUID) (*domain.TableSession, error) {
	session, err := s.repo.GetTableSession(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.MsgSessionNotFound)
	}
	return session, nil
}

// Update applies a partial change. When the patch carries a version it must
// match the stored one; the store re-checks it so a concurrent writer in
// between still loses with ErrSessionVersion.
func (s *TableSessionService) Update(ctx context.Context, id uuid.UUID, patch domain.TableSessionPatch) (*domain.TableSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := session.Version
	if patch.Version != nil {
		if *patch.Version != session.Version {
			return nil, domain.ErrSessionVersion
		}
		expected = *patch.Version
	}
	if patch.TableNo != nil && *patch.TableNo != session.TableNo {
		if err := s.checkTable(ctx, *patch.TableNo); err != nil {
			return nil, err
		}
		session.TableNo = *patch.TableNo
		session.Table = nil
	}
	if patch.Pax != nil {
		session.Pax = *patch.Pax
	}
	if patch.Total != nil {
		session.Total = *patch.Total
	}
	if err := s.repo.UpdateTableSession(ctx, session, expected); err != nil {
		return nil, notFound(err, domain.MsgSessionNotFound)
	}
	return session, nil
}

func (s *TableSessionService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.DeleteTableSession(ctx, id)
	return deleted(rows, err, domain.MsgSessionNotFound)
}

// Open and Close are idempotent: repeating one leaves the status unchanged.
func (s *TableSessionService) Open(ctx context.Context, id uuid.UUID) (*domain.TableSession, error) {
	return s.setStatus(ctx, id, domain.SessionUnpaid, domain.EventSessionOpened)
}

func (s *TableSessionService) Close(ctx context.Context, id uuid.UUID) (*domain.TableSession, error) {
	return s.setStatus(ctx, id, domain.SessionPaid, domain.EventSessionClosed)
}

func (s *TableSessionService) setStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus, eventType domain.EventType) (*domain.TableSession, error) {
	session, err := s.repo.SetTableSessionStatus(ctx, id, status)
	if err != nil {
		return nil, notFound(err, domain.MsgSessionNotFound)
	}
	s.events.session(ctx, eventType, session)
	return session, nil
}

func (s *TableSessionService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(session.ID)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	return png, nil
}
