package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portal-empleo-api/internal/application/notification"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// fakeNotifRepo repositorio en memoria con seguimiento de lecturas.
type fakeNotifRepo struct {
	notifications []*entity.Notification
	reads         map[string]map[string]bool // notifID -> userID -> leída
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{reads: map[string]map[string]bool{}}
}

func (r *fakeNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotifRepo) ListUnread(_ context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for _, n := range r.notifications {
		if !contains(n.Recipients, userID) || r.reads[n.ID][userID] {
			continue
		}
		list = append(list, n)
		if len(list) == limit {
			break
		}
	}
	return list, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, notificationID, userID string, _ time.Time) (bool, error) {
	for _, n := range r.notifications {
		if n.ID != notificationID || !contains(n.Recipients, userID) {
			continue
		}
		if r.reads[n.ID][userID] {
			return false, nil
		}
		if r.reads[n.ID] == nil {
			r.reads[n.ID] = map[string]bool{}
		}
		r.reads[n.ID][userID] = true
		return true, nil
	}
	return false, nil
}

func (r *fakeNotifRepo) MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		ok, _ := r.MarkRead(ctx, n.ID, userID, at)
		if ok {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotifRepo) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []*entity.Notification
	var deleted int64
	for _, n := range r.notifications {
		if n.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return deleted, nil
}

func (r *fakeNotifRepo) Stats(_ context.Context) (int64, []entity.NotificationTypeStat, error) {
	counts := map[entity.RecordKind]int64{}
	for _, n := range r.notifications {
		counts[n.Type]++
	}
	var stats []entity.NotificationTypeStat
	for k, c := range counts {
		stats = append(stats, entity.NotificationTypeStat{Type: k, Count: c})
	}
	return int64(len(r.notifications)), stats, nil
}

func (r *fakeNotifRepo) Delete(_ context.Context, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeUserRepo solo implementa lo que el despachador consulta; el resto no se usa.
type fakeUserRepo struct {
	repository.UserRepository
	approverIDs []string
}

func (r *fakeUserRepo) ListActiveApproverIDs(_ context.Context) ([]string, error) {
	return r.approverIDs, nil
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func submitter() *entity.User {
	return &entity.User{ID: "ger-1", Name: "Gerente Uno", Role: entity.RoleGerente}
}

func TestNotifyPendingApproval_SnapshotCongelado(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1", "adm-2"}}
	uc := notification.New(repo, users, nil, testLogger())

	err := uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-1", "Acme", submitter())
	require.NoError(t, err)
	require.Len(t, repo.notifications, 1)

	n := repo.notifications[0]
	assert.ElementsMatch(t, []string{"adm-1", "adm-2"}, n.Recipients)

	// Un admin activado después no entra al snapshot ya persistido.
	users.approverIDs = append(users.approverIDs, "adm-3")
	assert.ElementsMatch(t, []string{"adm-1", "adm-2"}, n.Recipients)

	unread, err := uc.ListUnread(context.Background(), "adm-3")
	require.NoError(t, err)
	assert.Empty(t, unread, "adm-3 no era destinatario al momento de creación")
}

func TestNotifyPendingApproval_SinAprobadores_NoOp(t *testing.T) {
	repo := newFakeNotifRepo()
	uc := notification.New(repo, &fakeUserRepo{}, nil, testLogger())

	err := uc.NotifyPendingApproval(context.Background(), entity.KindReporter, "rep-1", "Reportero X", submitter())
	require.NoError(t, err, "sin aprobadores activos la llamada no es un error")
	assert.Empty(t, repo.notifications, "no debe persistirse ninguna notificación")
}

func TestMarkRead_Idempotente(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1"}}
	uc := notification.New(repo, users, nil, testLogger())

	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-1", "Acme", submitter()))
	nID := repo.notifications[0].ID

	require.NoError(t, uc.MarkRead(context.Background(), nID, "adm-1"))

	err := uc.MarkRead(context.Background(), nID, "adm-1")
	assert.ErrorIs(t, err, domain.ErrNotFoundOrRead, "la segunda lectura no toca filas")
}

func TestMarkRead_NoDestinatario(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1"}}
	uc := notification.New(repo, users, nil, testLogger())

	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-1", "Acme", submitter()))
	nID := repo.notifications[0].ID

	err := uc.MarkRead(context.Background(), nID, "intruso")
	assert.ErrorIs(t, err, domain.ErrNotFoundOrRead)
}

func TestMarkAllRead(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1"}}
	uc := notification.New(repo, users, nil, testLogger())

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp", "Acme", submitter()))
	}

	marked, err := uc.MarkAllRead(context.Background(), "adm-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, marked)

	unread, err := uc.ListUnread(context.Background(), "adm-1")
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestPurgeOlderThan_IncluyeNoLeidas(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1"}}
	uc := notification.New(repo, users, nil, testLogger())

	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-1", "Vieja", submitter()))
	repo.notifications[0].CreatedAt = time.Now().AddDate(0, 0, -45)
	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-2", "Nueva", submitter()))

	deleted, err := uc.PurgeOlderThan(context.Background(), 30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted, "la purga elimina por antigüedad, leída o no")
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "emp-2", repo.notifications[0].EntityID)
}

func TestStats(t *testing.T) {
	repo := newFakeNotifRepo()
	users := &fakeUserRepo{approverIDs: []string{"adm-1"}}
	uc := notification.New(repo, users, nil, testLogger())

	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-1", "A", submitter()))
	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindEmpresa, "emp-2", "B", submitter()))
	require.NoError(t, uc.NotifyPendingApproval(context.Background(), entity.KindReporter, "rep-1", "C", submitter()))

	res, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Total)
	assert.Len(t, res.ByType, 2)
}
