package freight

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainAlert "freight-match/internal/domain/alert"
	domainFreight "freight-match/internal/domain/freight"
	domainUser "freight-match/internal/domain/user"
	domainVehicle "freight-match/internal/domain/vehicle"
)

// fakeFreightRepo is an in-memory freight store with the same conditional
// update semantics as the SQL implementation.
type fakeFreightRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*domainFreight.Job
}

func newFakeFreightRepo() *fakeFreightRepo {
	return &fakeFreightRepo{jobs: make(map[uuid.UUID]*domainFreight.Job)}
}

func (r *fakeFreightRepo) Create(_ context.Context, job *domainFreight.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = uuid.New()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeFreightRepo) GetByID(_ context.Context, jobID uuid.UUID) (*domainFreight.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return nil, domainFreight.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeFreightRepo) Delete(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return domainFreight.ErrJobNotFound
	}
	if job.Status == domainFreight.StatusReserved {
		return domainFreight.ErrJobReserved
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeFreightRepo) List(_ context.Context, filter *domainFreight.Filter) ([]*domainFreight.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*domainFreight.Job
	for _, job := range r.jobs {
		if filter.Status != nil && job.Status != *filter.Status {
			continue
		}
		if filter.VehicleType != nil && job.VehicleType != *filter.VehicleType {
			continue
		}
		if filter.DriverID != nil && (job.DriverID == nil || *job.DriverID != *filter.DriverID) {
			continue
		}
		if filter.Origin != "" && !locationMatches(job.Origin, filter.Origin) {
			continue
		}
		if filter.Destination != "" && !locationMatches(job.Destination, filter.Destination) {
			continue
		}
		copied := *job
		matched = append(matched, &copied)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func locationMatches(loc domainFreight.Location, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(loc.City), term) ||
		strings.Contains(strings.ToLower(loc.State), term)
}

func (r *fakeFreightRepo) GetStatistics(_ context.Context) (*domainFreight.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &domainFreight.Statistics{ByStatus: make(map[string]int)}
	for _, job := range r.jobs {
		stats.TotalJobs++
		stats.ByStatus[string(job.Status)]++
	}
	return stats, nil
}

func (r *fakeFreightRepo) Reserve(_ context.Context, jobID, driverID, vehicleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.Status != domainFreight.StatusAvailable {
		return domainFreight.ErrJobNotAvailable
	}

	job.Status = domainFreight.StatusReserved
	job.DriverID = &driverID
	job.VehicleID = &vehicleID
	job.UpdatedAt = time.Now()
	return nil
}

func (r *fakeFreightRepo) Complete(_ context.Context, jobID uuid.UUID, deliveredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.Status != domainFreight.StatusReserved {
		return domainFreight.ErrJobNotReserved
	}

	job.Status = domainFreight.StatusCompleted
	job.DeliveredAt = &deliveredAt
	job.UpdatedAt = time.Now()
	return nil
}

func (r *fakeFreightRepo) CountActiveByVehicle(_ context.Context, vehicleID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, job := range r.jobs {
		if job.Status == domainFreight.StatusReserved && job.VehicleID != nil && *job.VehicleID == vehicleID {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (r *fakeUserRepo) add(u *domainUser.User) *domainUser.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, u *domainUser.User) error {
	r.add(u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *domainUser.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domainUser.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*domainUser.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*domainUser.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) SetDeviceToken(_ context.Context, userID uuid.UUID, token, platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.DeviceToken = &token
	u.DevicePlatform = &platform
	return nil
}

func (r *fakeUserRepo) ClearDeviceToken(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.DeviceToken = nil
	u.DevicePlatform = nil
	return nil
}

func (r *fakeUserRepo) FindDriversByVehicleType(_ context.Context, vehicleType string) ([]*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var drivers []*domainUser.User
	for _, u := range r.users {
		if u.Role != domainUser.RoleDriver || !u.IsActive || u.DeviceToken == nil {
			continue
		}
		if r.ownsType(u.ID, vehicleType) {
			drivers = append(drivers, u)
		}
	}
	return drivers, nil
}

// ownsType is resolved through the vehicle repo in production; the fake keeps
// a side table instead.
var fleetByOwner = struct {
	mu    sync.Mutex
	types map[uuid.UUID]map[string]bool
}{types: make(map[uuid.UUID]map[string]bool)}

func (r *fakeUserRepo) ownsType(ownerID uuid.UUID, vehicleType string) bool {
	fleetByOwner.mu.Lock()
	defer fleetByOwner.mu.Unlock()
	return fleetByOwner.types[ownerID][vehicleType]
}

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles []*domainVehicle.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{}
}

func (r *fakeVehicleRepo) add(v *domainVehicle.Vehicle) *domainVehicle.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.vehicles = append(r.vehicles, v)

	fleetByOwner.mu.Lock()
	if fleetByOwner.types[v.OwnerID] == nil {
		fleetByOwner.types[v.OwnerID] = make(map[string]bool)
	}
	fleetByOwner.types[v.OwnerID][string(v.Type)] = true
	fleetByOwner.mu.Unlock()

	return v
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *domainVehicle.Vehicle) error {
	r.add(v)
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, vehicleID uuid.UUID) (*domainVehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vehicles {
		if v.ID == vehicleID {
			return v, nil
		}
	}
	return nil, domainVehicle.ErrVehicleNotFound
}

func (r *fakeVehicleRepo) GetByPlate(_ context.Context, plate string) (*domainVehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vehicles {
		if v.Plate == plate {
			return v, nil
		}
	}
	return nil, domainVehicle.ErrVehicleNotFound
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *domainVehicle.Vehicle) error {
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, vehicleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.vehicles {
		if v.ID == vehicleID {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return nil
		}
	}
	return domainVehicle.ErrVehicleNotFound
}

func (r *fakeVehicleRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domainVehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*domainVehicle.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerID {
			owned = append(owned, v)
		}
	}
	return owned, nil
}

func (r *fakeVehicleRepo) FirstByOwnerAndType(_ context.Context, ownerID uuid.UUID, vehicleType domainVehicle.VehicleType) (*domainVehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var oldest *domainVehicle.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID != ownerID || v.Type != vehicleType {
			continue
		}
		if oldest == nil || v.CreatedAt.Before(oldest.CreatedAt) {
			oldest = v
		}
	}
	if oldest == nil {
		return nil, domainVehicle.ErrVehicleNotFound
	}
	return oldest, nil
}

type fakeAlertRepo struct {
	mu      sync.Mutex
	records []*domainAlert.Record
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{}
}

func (r *fakeAlertRepo) Append(_ context.Context, record *domainAlert.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return nil
}

func (r *fakeAlertRepo) ListByUser(_ context.Context, userID uuid.UUID, page, pageSize int) ([]*domainAlert.Record, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*domainAlert.Record
	for _, rec := range r.records {
		if rec.UserID == userID {
			owned = append(owned, rec)
		}
	}
	return owned, int64(len(owned)), nil
}

func (r *fakeAlertRepo) CountByJob(_ context.Context, jobID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, rec := range r.records {
		if rec.JobID != nil && *rec.JobID == jobID {
			count++
		}
	}
	return count, nil
}

// recordingDispatcher captures every send and can fail chosen tokens.
type recordingDispatcher struct {
	mu       sync.Mutex
	sent     []string
	failWith map[string]error
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{failWith: make(map[string]error)}
}

func (d *recordingDispatcher) Send(_ context.Context, deviceToken, _, _ string, _ map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err, ok := d.failWith[deviceToken]; ok {
		return err
	}
	d.sent = append(d.sent, deviceToken)
	return nil
}

func (d *recordingDispatcher) sentCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}
