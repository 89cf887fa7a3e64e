package reminder

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"pillpal/models"

	"go.uber.org/zap"
)

// In-memory repositories used by the service and clock tests.

type fakeMedicationRepo struct {
	mu   sync.Mutex
	meds map[string]models.Medication
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{meds: make(map[string]models.Medication)}
}

func (r *fakeMedicationRepo) Create(ctx context.Context, med models.Medication) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meds[med.ID] = med
	return med.ID, nil
}

func (r *fakeMedicationRepo) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	med, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	return &med, nil
}

func (r *fakeMedicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Medication
	for _, m := range r.meds {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMedicationRepo) ListActive(ctx context.Context) ([]models.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Medication
	for _, m := range r.meds {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMedicationRepo) Update(ctx context.Context, med models.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meds[med.ID]; !ok {
		return errors.New("medication not found")
	}
	r.meds[med.ID] = med
	return nil
}

func (r *fakeMedicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meds[id]; !ok {
		return errors.New("medication not found")
	}
	delete(r.meds, id)
	return nil
}

type fakeReminderRepo struct {
	mu        sync.Mutex
	instances map[string]models.ReminderInstance
	logs      []models.MedicationLog
	nextID    int

	// failOpenFor injects a lookup failure for specific medications.
	failOpenFor map[string]error
	// gates holds one-shot barriers keyed by medication, consumed by the
	// next open-instance lookup.
	gates map[string]*openGate
}

type openGate struct {
	entered chan struct{}
	release chan struct{}
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{
		instances:   make(map[string]models.ReminderInstance),
		failOpenFor: make(map[string]error),
		gates:       make(map[string]*openGate),
	}
}

// gateNextOpenLookup parks the next GetOpenByMedication call for the
// medication until release is closed. entered is closed when the call
// arrives, so a test can observe the caller inside its critical section.
func (r *fakeReminderRepo) gateNextOpenLookup(medicationID string) (entered, release chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := &openGate{entered: make(chan struct{}), release: make(chan struct{})}
	r.gates[medicationID] = g
	return g.entered, g.release
}

func (r *fakeReminderRepo) Create(ctx context.Context, inst models.ReminderInstance) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst.ID == "" {
		r.nextID++
		inst.ID = "inst-" + strconv.Itoa(r.nextID)
	}
	r.instances[inst.ID] = inst
	return inst.ID, nil
}

func (r *fakeReminderRepo) GetByID(ctx context.Context, id string) (*models.ReminderInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[id]
	if !ok {
		return nil, nil
	}
	return &inst, nil
}

func (r *fakeReminderRepo) GetOpenByMedication(ctx context.Context, medicationID string) (*models.ReminderInstance, error) {
	r.mu.Lock()
	gate := r.gates[medicationID]
	delete(r.gates, medicationID)
	failErr := r.failOpenFor[medicationID]
	r.mu.Unlock()

	if gate != nil {
		close(gate.entered)
		<-gate.release
	}
	if failErr != nil {
		return nil, failErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range r.instances {
		if inst.MedicationID == medicationID && inst.Status.Open() {
			found := inst
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeReminderRepo) Update(ctx context.Context, inst models.ReminderInstance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instances[inst.ID]; !ok {
		return errors.New("reminder instance not found")
	}
	r.instances[inst.ID] = inst
	return nil
}

func (r *fakeReminderRepo) DeleteOpenByMedication(ctx context.Context, medicationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, inst := range r.instances {
		if inst.MedicationID == medicationID && inst.Status.Open() {
			delete(r.instances, id)
		}
	}
	return nil
}

func (r *fakeReminderRepo) CreateLog(ctx context.Context, entry models.MedicationLog) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == "" {
		entry.ID = "log"
	}
	r.logs = append(r.logs, entry)
	return entry.ID, nil
}

func (r *fakeReminderRepo) ListLogsByUser(ctx context.Context, userID string) ([]models.MedicationLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MedicationLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) openCount(medicationID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, inst := range r.instances {
		if inst.MedicationID == medicationID && inst.Status.Open() {
			n++
		}
	}
	return n
}

func newTestService() (*DefaultReminderService, *fakeMedicationRepo, *fakeReminderRepo) {
	meds := newFakeMedicationRepo()
	rems := newFakeReminderRepo()
	svc := NewReminderService(meds, rems, zap.NewNop())
	return svc, meds, rems
}
