package appointmentService

import (
	"TinyTotsGolang/internal/api/appointment"
	appointmentRepository "TinyTotsGolang/internal/api/appointment/repository"
	"TinyTotsGolang/internal/entity"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeAppointmentStore struct {
	appointments  map[string]entity.Appointment
	statusUpdates map[string]string
}

func (f *fakeAppointmentStore) CreateAppointment(ctx context.Context, apt entity.Appointment) error {
	f.appointments[apt.ID] = apt
	return nil
}

func (f *fakeAppointmentStore) GetAppointmentByID(ctx context.Context, id string) (entity.Appointment, error) {
	apt, ok := f.appointments[id]
	if !ok {
		return entity.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return apt, nil
}

func (f *fakeAppointmentStore) GetAppointmentsByParentID(ctx context.Context, parentID string, limit, offset int) ([]entity.Appointment, int, error) {
	var matched []entity.Appointment
	for _, apt := range f.appointments {
		if apt.ParentID == parentID {
			matched = append(matched, apt)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeAppointmentStore) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	apt, ok := f.appointments[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}
	apt.Status = status
	f.appointments[id] = apt
	f.statusUpdates[id] = status
	return nil
}

type fakeChildStore struct {
	children map[string]entity.Child
}

func (f *fakeChildStore) GetChildByID(ctx context.Context, id string) (entity.Child, error) {
	child, ok := f.children[id]
	if !ok {
		return entity.Child{}, appointment.ErrChildNotFound
	}
	return child, nil
}

type fakeRepository struct {
	appointments *fakeAppointmentStore
	children     *fakeChildStore
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		appointments: &fakeAppointmentStore{
			appointments:  make(map[string]entity.Appointment),
			statusUpdates: make(map[string]string),
		},
		children: &fakeChildStore{children: make(map[string]entity.Child)},
	}
}

func (f *fakeRepository) NewClient(tx bool) (appointmentRepository.Client, error) {
	return appointmentRepository.Client{
		Appointments: f.appointments,
		Children:     f.children,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01HZFAKEULID0000000000TEST", nil
}

func (fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error { return nil }

func newTestService(repo *fakeRepository) IAppointmentService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, repo, fakeUtils{}, nil)
}

func TestCreateAppointmentForOwnChild(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{
		ID: "child-1", ParentID: "parent-1", FirstName: "Mia", LastName: "Lopez",
	}
	svc := newTestService(repo)

	resp, err := svc.CreateAppointment(context.Background(), "parent-1", appointment.CreateAppointmentRequest{
		ChildID:         "child-1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		Reason:          "Routine checkup",
		AppointmentType: "onsite",
	})
	if err != nil {
		t.Fatalf("CreateAppointment error = %v", err)
	}
	if resp.Status != entity.AppointmentStatusPending {
		t.Errorf("status = %q, want %q", resp.Status, entity.AppointmentStatusPending)
	}
	if resp.ChildName != "Mia Lopez" {
		t.Errorf("child name = %q, want %q", resp.ChildName, "Mia Lopez")
	}
	if len(repo.appointments.appointments) != 1 {
		t.Errorf("stored appointments = %d, want 1", len(repo.appointments.appointments))
	}
}

func TestCreateAppointmentRejectsOtherParentsChild(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-2"}
	svc := newTestService(repo)

	_, err := svc.CreateAppointment(context.Background(), "parent-1", appointment.CreateAppointmentRequest{
		ChildID:         "child-1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		Reason:          "Routine checkup",
		AppointmentType: "onsite",
	})
	if !errors.Is(err, appointment.ErrChildNotOwned) {
		t.Fatalf("error = %v, want ErrChildNotOwned", err)
	}
}

func TestGetAppointmentReturnsOwnAppointment(t *testing.T) {
	repo := newFakeRepository()
	repo.appointments.appointments["apt-1"] = entity.Appointment{
		ID: "apt-1", ParentID: "parent-1", ChildID: "child-1",
		AppointmentDate: "2026-09-15", AppointmentTime: "10:00",
		Status: entity.AppointmentStatusPending,
	}
	svc := newTestService(repo)

	resp, err := svc.GetAppointment(context.Background(), "parent-1", "apt-1")
	if err != nil {
		t.Fatalf("GetAppointment error = %v", err)
	}
	if resp.ID != "apt-1" || resp.AppointmentDate != "2026-09-15" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGetAppointmentHidesOtherParentsAppointment(t *testing.T) {
	repo := newFakeRepository()
	repo.appointments.appointments["apt-1"] = entity.Appointment{
		ID: "apt-1", ParentID: "parent-2", Status: entity.AppointmentStatusPending,
	}
	svc := newTestService(repo)

	_, err := svc.GetAppointment(context.Background(), "parent-1", "apt-1")
	if !errors.Is(err, appointment.ErrAppointmentNotOwned) {
		t.Fatalf("error = %v, want ErrAppointmentNotOwned", err)
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.GetAppointment(context.Background(), "parent-1", "missing")
	if !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestCancelAppointmentPending(t *testing.T) {
	repo := newFakeRepository()
	repo.appointments.appointments["apt-1"] = entity.Appointment{
		ID: "apt-1", ParentID: "parent-1", Status: entity.AppointmentStatusPending,
	}
	svc := newTestService(repo)

	resp, err := svc.CancelAppointment(context.Background(), "parent-1", "apt-1")
	if err != nil {
		t.Fatalf("CancelAppointment error = %v", err)
	}
	if resp.Status != entity.AppointmentStatusCancelled {
		t.Errorf("status = %q, want %q", resp.Status, entity.AppointmentStatusCancelled)
	}
	if got := repo.appointments.statusUpdates["apt-1"]; got != entity.AppointmentStatusCancelled {
		t.Errorf("stored status = %q, want %q", got, entity.AppointmentStatusCancelled)
	}
}

func TestCancelAppointmentNotOwned(t *testing.T) {
	repo := newFakeRepository()
	repo.appointments.appointments["apt-1"] = entity.Appointment{
		ID: "apt-1", ParentID: "parent-2", Status: entity.AppointmentStatusPending,
	}
	svc := newTestService(repo)

	_, err := svc.CancelAppointment(context.Background(), "parent-1", "apt-1")
	if !errors.Is(err, appointment.ErrAppointmentNotOwned) {
		t.Fatalf("error = %v, want ErrAppointmentNotOwned", err)
	}
	if len(repo.appointments.statusUpdates) != 0 {
		t.Errorf("status updates = %d, want 0", len(repo.appointments.statusUpdates))
	}
}

func TestCancelAppointmentCompleted(t *testing.T) {
	repo := newFakeRepository()
	repo.appointments.appointments["apt-1"] = entity.Appointment{
		ID: "apt-1", ParentID: "parent-1", Status: entity.AppointmentStatusCompleted,
	}
	svc := newTestService(repo)

	_, err := svc.CancelAppointment(context.Background(), "parent-1", "apt-1")
	if !errors.Is(err, appointment.ErrNotCancellable) {
		t.Fatalf("error = %v, want ErrNotCancellable", err)
	}
	if len(repo.appointments.statusUpdates) != 0 {
		t.Errorf("status updates = %d, want 0", len(repo.appointments.statusUpdates))
	}
}
