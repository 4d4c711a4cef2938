package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

var (
	headOffice = &domain.Principal{ID: 1, Kind: domain.PrincipalEmployee, Roles: []string{domain.RoleHeadOffice}}
	customer   = &domain.Principal{ID: 5, Kind: domain.PrincipalCustomer, Roles: []string{domain.RoleCustomer}}
)

// newRequest builds a request with an optional JSON body, principal and path values.
func newRequest(method, target, body string, actor *domain.Principal, pathValues map[string]string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	if actor != nil {
		r = r.WithContext(middleware.SetPrincipal(r.Context(), actor))
	}
	for k, v := range pathValues {
		r.SetPathValue(k, v)
	}
	return r
}

// decodeEnvelope decodes the response envelope, unmarshalling data into dataDest when non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dataDest any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	if dataDest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dataDest))
	}
	return env.Error
}

func mustPager(t *testing.T) *domain.Pager {
	t.Helper()
	p, err := domain.NewPager(domain.PagingConfig{RowsPerPage: 8, PageNumbersPerWindow: 10})
	require.NoError(t, err)
	return p
}

type fakeAuthService struct {
	err       error
	lastKind  string
	lastLogin string
	lastActor *domain.Principal
	lastNew   string
}

func (f *fakeAuthService) Login(ctx context.Context, kind, loginID, password string) (string, *domain.Principal, error) {
	f.lastKind, f.lastLogin = kind, loginID
	if f.err != nil {
		return "", nil, f.err
	}
	return "signed-token", &domain.Principal{ID: 9, Kind: kind, Roles: []string{domain.RoleCustomer}}, nil
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, actor *domain.Principal, currentPassword, newPassword string) error {
	f.lastActor, f.lastNew = actor, newPassword
	return f.err
}

// fakeEquipmentService pages over total rows with a real Pager.
type fakeEquipmentService struct {
	pager      *domain.Pager
	total      int
	err        error
	lastPage   int
	lastFilter domain.EquipmentFilter
	lastActor  *domain.Principal
	lastID     int64
	lastUpdate domain.EquipmentUpdate
}

func (f *fakeEquipmentService) ListPage(ctx context.Context, page int) (*domain.EquipmentPage, error) {
	return f.SearchPage(ctx, domain.EquipmentFilter{}, page)
}

func (f *fakeEquipmentService) SearchPage(ctx context.Context, filter domain.EquipmentFilter, page int) (*domain.EquipmentPage, error) {
	f.lastPage, f.lastFilter = page, filter
	if f.err != nil {
		return nil, f.err
	}
	p := f.pager.Compute(page, f.total)
	items := []*domain.Equipment{}
	for i := p.BeginRow; i < min(p.BeginRow+p.RowsPerPage, f.total); i++ {
		items = append(items, &domain.Equipment{ID: int64(f.total - i), ItemName: "item"})
	}
	return &domain.EquipmentPage{Items: items, Pagination: p, Total: f.total}, nil
}

func (f *fakeEquipmentService) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Equipment{ID: id, ItemName: "Treadmill"}, nil
}

func (f *fakeEquipmentService) Add(ctx context.Context, actor *domain.Principal, eq *domain.Equipment) error {
	f.lastActor = actor
	if f.err != nil {
		return f.err
	}
	eq.ID = 77
	eq.EmployeeID = actor.ID
	eq.Active = true
	return nil
}

func (f *fakeEquipmentService) Update(ctx context.Context, actor *domain.Principal, id int64, in domain.EquipmentUpdate) (*domain.Equipment, error) {
	f.lastActor, f.lastID, f.lastUpdate = actor, id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Equipment{ID: id, ItemName: in.ItemName, ItemPrice: in.ItemPrice}, nil
}

func (f *fakeEquipmentService) Deactivate(ctx context.Context, actor *domain.Principal, id int64) error {
	f.lastActor, f.lastID = actor, id
	return f.err
}

type fakeEmployeeImageService struct {
	err     error
	lastImg *domain.EmployeeImage
}

func (f *fakeEmployeeImageService) Get(ctx context.Context, employeeID int64) (*domain.EmployeeImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EmployeeImage{EmployeeID: employeeID, Filename: "4_abc.png"}, nil
}

func (f *fakeEmployeeImageService) Set(ctx context.Context, actor *domain.Principal, img *domain.EmployeeImage) error {
	f.lastImg = img
	if f.err != nil {
		return f.err
	}
	img.Filename = "4_abc.png"
	return nil
}

type fakeReviewService struct {
	pager      *domain.Pager
	total      int
	err        error
	lastPage   int
	lastID     int64
	lastActor  *domain.Principal
	lastReview *domain.Review
}

func (f *fakeReviewService) ListPage(ctx context.Context, page int) (*domain.ReviewPage, error) {
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	p := f.pager.Compute(page, f.total)
	return &domain.ReviewPage{Items: []*domain.Review{}, Pagination: p, Total: f.total}, nil
}

func (f *fakeReviewService) Get(ctx context.Context, id int64) (*domain.Review, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Review{ID: id, Title: "Great"}, nil
}

func (f *fakeReviewService) Add(ctx context.Context, actor *domain.Principal, rv *domain.Review) error {
	f.lastActor, f.lastReview = actor, rv
	if f.err != nil {
		return f.err
	}
	rv.ID = 40
	rv.CustomerID = actor.ID
	return nil
}

func (f *fakeReviewService) Update(ctx context.Context, actor *domain.Principal, id int64, title, content string) (*domain.Review, error) {
	f.lastActor, f.lastID = actor, id
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Review{ID: id, Title: title, Content: content}, nil
}

func (f *fakeReviewService) Delete(ctx context.Context, actor *domain.Principal, id int64) error {
	f.lastActor, f.lastID = actor, id
	return f.err
}

type fakeReservationService struct {
	err        error
	paymentErr error
	lastYear   int
	lastMonth  time.Month
	lastID     int64
	lastActor  *domain.Principal
}

func (f *fakeReservationService) ListProgramsByMonth(ctx context.Context, year int, month time.Month) ([]*domain.ProgramDate, error) {
	f.lastYear, f.lastMonth = year, month
	return []*domain.ProgramDate{{ID: 1, ProgramName: "Pilates"}}, f.err
}

func (f *fakeReservationService) ListCalendar(ctx context.Context) ([]*domain.ProgramDate, error) {
	return []*domain.ProgramDate{{ID: 1}, {ID: 2}}, f.err
}

func (f *fakeReservationService) ListMyCalendar(ctx context.Context, customerID int64, year int, month time.Month) ([]*domain.ProgramDate, error) {
	f.lastYear, f.lastMonth = year, month
	return []*domain.ProgramDate{}, f.err
}

func (f *fakeReservationService) GetProgramDate(ctx context.Context, programDateID, customerID int64) (*domain.ProgramDateDetail, error) {
	f.lastID = programDateID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ProgramDateDetail{ProgramDate: domain.ProgramDate{ID: programDateID}, Reserved: true, ReservationID: 50}, nil
}

func (f *fakeReservationService) CustomerLoginID(ctx context.Context, customerID int64) (string, error) {
	return "minji", f.err
}

func (f *fakeReservationService) CustomerPayment(ctx context.Context, customerID int64) (*domain.Payment, error) {
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return &domain.Payment{ID: 1, CustomerID: customerID, MembershipName: "3 months"}, nil
}

func (f *fakeReservationService) Reserve(ctx context.Context, actor *domain.Principal, programDateID int64) (*domain.Reservation, error) {
	f.lastActor, f.lastID = actor, programDateID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reservation{ID: 100, ProgramDateID: programDateID, CustomerID: actor.ID}, nil
}

func (f *fakeReservationService) ListMine(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	return nil, f.err
}

func (f *fakeReservationService) Cancel(ctx context.Context, actor *domain.Principal, reservationID int64) error {
	f.lastActor, f.lastID = actor, reservationID
	return f.err
}
