package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"gdhealth/internal/domain"
)

var (
	headOffice = &domain.Principal{ID: 1, Kind: domain.PrincipalEmployee, Roles: []string{domain.RoleHeadOffice}}
	branch     = &domain.Principal{ID: 2, Kind: domain.PrincipalEmployee, Roles: []string{domain.RoleBranch}}
	customer   = &domain.Principal{ID: 5, Kind: domain.PrincipalCustomer, Roles: []string{domain.RoleCustomer}}
	other      = &domain.Principal{ID: 6, Kind: domain.PrincipalCustomer, Roles: []string{domain.RoleCustomer}}
)

var errDB = errors.New("db down")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fakeEquipmentRepo is an in-memory EquipmentRepository. It records the last
// List window so tests can check what the pager asked for.
type fakeEquipmentRepo struct {
	items      []*domain.Equipment
	nextID     int64
	countErr   error
	lastOffset int
	lastLimit  int
	lastFilter domain.EquipmentFilter
}

func newFakeEquipmentRepo(n int) *fakeEquipmentRepo {
	f := &fakeEquipmentRepo{nextID: 1}
	for i := 0; i < n; i++ {
		f.items = append(f.items, &domain.Equipment{ID: f.nextID, ItemName: "item", Active: true})
		f.nextID++
	}
	return f
}

func (f *fakeEquipmentRepo) Count(ctx context.Context, filter domain.EquipmentFilter) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.items), nil
}

func (f *fakeEquipmentRepo) List(ctx context.Context, filter domain.EquipmentFilter, offset, limit int) ([]*domain.Equipment, error) {
	f.lastOffset, f.lastLimit, f.lastFilter = offset, limit, filter
	if offset >= len(f.items) {
		return nil, nil
	}
	end := min(offset+limit, len(f.items))
	return f.items[offset:end], nil
}

func (f *fakeEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	for _, eq := range f.items {
		if eq.ID == id {
			cp := *eq
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	eq.ID = f.nextID
	f.nextID++
	f.items = append(f.items, eq)
	return nil
}

func (f *fakeEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	for i, cur := range f.items {
		if cur.ID == eq.ID {
			f.items[i] = eq
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEquipmentRepo) SetActive(ctx context.Context, id, employeeID int64, active bool, updatedAt time.Time) error {
	for _, eq := range f.items {
		if eq.ID == id {
			eq.Active = active
			eq.EmployeeID = employeeID
			eq.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEmployeeImageRepo struct {
	byEmployee map[int64]*domain.EmployeeImage
	err        error
}

func (f *fakeEmployeeImageRepo) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.EmployeeImage, error) {
	if img, ok := f.byEmployee[employeeID]; ok {
		return img, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEmployeeImageRepo) Upsert(ctx context.Context, img *domain.EmployeeImage) error {
	if f.err != nil {
		return f.err
	}
	if f.byEmployee == nil {
		f.byEmployee = map[int64]*domain.EmployeeImage{}
	}
	img.ID = img.EmployeeID * 10
	f.byEmployee[img.EmployeeID] = img
	return nil
}

type fakeReviewRepo struct {
	byID   map[int64]*domain.Review
	nextID int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byID: map[int64]*domain.Review{}, nextID: 1}
}

func (f *fakeReviewRepo) Count(ctx context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeReviewRepo) List(ctx context.Context, offset, limit int) ([]*domain.Review, error) {
	all := make([]*domain.Review, 0, len(f.byID))
	for _, rv := range f.byID {
		all = append(all, rv)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	if rv, ok := f.byID[id]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReviewRepo) ExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	for _, rv := range f.byID {
		if rv.ReservationID == reservationID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	rv.ID = f.nextID
	f.nextID++
	f.byID[rv.ID] = rv
	return nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	if _, ok := f.byID[rv.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[rv.ID] = rv
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeReservationRepo is an in-memory ProgramReservationRepository.
type fakeReservationRepo struct {
	dates        map[int64]*domain.ProgramDate
	reservations map[int64]*domain.Reservation
	payments     map[int64]*domain.Payment
	nextID       int64
	lastFrom     time.Time
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		dates:        map[int64]*domain.ProgramDate{},
		reservations: map[int64]*domain.Reservation{},
		payments:     map[int64]*domain.Payment{},
		nextID:       100,
	}
}

func (f *fakeReservationRepo) ListProgramDatesByMonth(ctx context.Context, year int, month time.Month) ([]*domain.ProgramDate, error) {
	var out []*domain.ProgramDate
	for _, pd := range f.dates {
		if pd.Date.Year() == year && pd.Date.Month() == month {
			out = append(out, pd)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListProgramDatesFrom(ctx context.Context, from time.Time) ([]*domain.ProgramDate, error) {
	f.lastFrom = from
	var out []*domain.ProgramDate
	for _, pd := range f.dates {
		if !pd.Date.Before(from) {
			out = append(out, pd)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListCustomerProgramDates(ctx context.Context, customerID int64, year int, month time.Month) ([]*domain.ProgramDate, error) {
	var out []*domain.ProgramDate
	for _, res := range f.reservations {
		pd := f.dates[res.ProgramDateID]
		if res.CustomerID == customerID && pd.Date.Year() == year && pd.Date.Month() == month {
			out = append(out, pd)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) GetProgramDate(ctx context.Context, programDateID int64) (*domain.ProgramDate, error) {
	pd, ok := f.dates[programDateID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *pd
	for _, res := range f.reservations {
		if res.ProgramDateID == programDateID {
			cp.ReservedCount++
		}
	}
	return &cp, nil
}

func (f *fakeReservationRepo) GetReservationFor(ctx context.Context, programDateID, customerID int64) (*domain.Reservation, error) {
	for _, res := range f.reservations {
		if res.ProgramDateID == programDateID && res.CustomerID == customerID {
			return res, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) GetReservation(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	if res, ok := f.reservations[reservationID]; ok {
		return res, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) LatestPayment(ctx context.Context, customerID int64) (*domain.Payment, error) {
	if pay, ok := f.payments[customerID]; ok {
		return pay, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeReservationRepo) CreateReservation(ctx context.Context, r *domain.Reservation) error {
	r.ID = f.nextID
	f.nextID++
	f.reservations[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) ListReservationsByCustomer(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range f.reservations {
		if res.CustomerID == customerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) DeleteReservation(ctx context.Context, reservationID, customerID int64) error {
	res, ok := f.reservations[reservationID]
	if !ok || res.CustomerID != customerID {
		return domain.ErrNotFound
	}
	delete(f.reservations, reservationID)
	return nil
}

type fakeCustomerRepo struct {
	byID      map[int64]*domain.Customer
	updateErr error
}

func (f *fakeCustomerRepo) GetByLoginID(ctx context.Context, loginID string) (*domain.Customer, error) {
	for _, c := range f.byID {
		if c.LoginID == loginID {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.PasswordHash, c.Salt, c.UpdatedAt = hash, salt, updatedAt
	return nil
}

type fakeEmployeeRepo struct {
	byLogin map[string]*domain.Employee
	err     error
}

func (f *fakeEmployeeRepo) GetByLoginID(ctx context.Context, loginID string) (*domain.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byLogin[loginID]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	for _, e := range f.byLogin {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id int64, hash, salt string, updatedAt time.Time) error {
	for _, e := range f.byLogin {
		if e.ID == id {
			e.PasswordHash, e.Salt, e.UpdatedAt = hash, salt, updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeHasher treats "hash" as salt+":"+password.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) { return salt + ":" + password, nil }

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct {
	issued *domain.Principal
	expiry time.Duration
	err    error
}

func (f *fakeTokens) Issue(p *domain.Principal, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued, f.expiry = p, expiry
	return "token-" + p.Kind, nil
}

type sentEmail struct {
	kind string
	data *domain.ReservationEmailData
}

type fakeEmailService struct {
	sent []sentEmail
	err  error
}

func (f *fakeEmailService) SendReservationConfirmed(ctx context.Context, data *domain.ReservationEmailData) error {
	f.sent = append(f.sent, sentEmail{kind: "confirmed", data: data})
	return f.err
}

func (f *fakeEmailService) SendReservationCancelled(ctx context.Context, data *domain.ReservationEmailData) error {
	f.sent = append(f.sent, sentEmail{kind: "cancelled", data: data})
	return f.err
}
