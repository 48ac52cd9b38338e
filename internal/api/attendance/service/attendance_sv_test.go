package attendanceService

import (
	"TinyTotsGolang/internal/api/attendance"
	attendanceRepository "TinyTotsGolang/internal/api/attendance/repository"
	"TinyTotsGolang/internal/entity"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeAttendanceStore struct {
	records []entity.AttendanceRecord
}

func (f *fakeAttendanceStore) GetRecordByDate(ctx context.Context, childID, date string) (entity.AttendanceRecord, bool, error) {
	for _, record := range f.records {
		if record.ChildID == childID && record.Date == date {
			return record, true, nil
		}
	}
	return entity.AttendanceRecord{}, false, nil
}

func (f *fakeAttendanceStore) GetRecordsSince(ctx context.Context, childID, sinceDate string) ([]entity.AttendanceRecord, error) {
	var matched []entity.AttendanceRecord
	for _, record := range f.records {
		if record.ChildID == childID && record.Date >= sinceDate {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (f *fakeAttendanceStore) CreateRecord(ctx context.Context, record entity.AttendanceRecord) error {
	f.records = append(f.records, record)
	return nil
}

type fakeChildStore struct {
	children map[string]entity.Child
}

func (f *fakeChildStore) GetChildByID(ctx context.Context, id string) (entity.Child, error) {
	child, ok := f.children[id]
	if !ok {
		return entity.Child{}, attendance.ErrChildNotFound
	}
	return child, nil
}

func (f *fakeChildStore) GetChildrenByParentID(ctx context.Context, parentID string) ([]entity.Child, error) {
	var matched []entity.Child
	for _, child := range f.children {
		if child.ParentID == parentID {
			matched = append(matched, child)
		}
	}
	return matched, nil
}

type fakeRepository struct {
	attendance *fakeAttendanceStore
	children   *fakeChildStore
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		attendance: &fakeAttendanceStore{},
		children:   &fakeChildStore{children: make(map[string]entity.Child)},
	}
}

func (f *fakeRepository) NewClient(tx bool) (attendanceRepository.Client, error) {
	return attendanceRepository.Client{
		Attendance: f.attendance,
		Children:   f.children,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01HZFAKEULID0000000000TEST", nil
}

func (fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error { return nil }

func newTestService(repo *fakeRepository) IAttendanceService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, repo, fakeUtils{})
}

func TestGetAttendanceSummaryIncludesToday(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{
		ID: "child-1", ParentID: "parent-1", FirstName: "Mia", LastName: "Lopez",
	}
	today := time.Now().Format("2006-01-02")
	repo.attendance.records = []entity.AttendanceRecord{
		{ID: "rec-1", ChildID: "child-1", Date: today, Status: entity.AttendanceStatusPresent, CheckInTime: "08:15"},
	}
	svc := newTestService(repo)

	summary, err := svc.GetAttendanceSummary(context.Background(), "parent-1", "child-1")
	if err != nil {
		t.Fatalf("GetAttendanceSummary error = %v", err)
	}
	if summary.Today == nil {
		t.Fatal("today record missing from summary")
	}
	if summary.Today.Status != entity.AttendanceStatusPresent {
		t.Errorf("today status = %q, want %q", summary.Today.Status, entity.AttendanceStatusPresent)
	}
	if summary.Today.CheckInTime != "08:15" {
		t.Errorf("check-in time = %q, want %q", summary.Today.CheckInTime, "08:15")
	}
}

func TestGetAttendanceSummaryRejectsOtherParentsChild(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-2"}
	svc := newTestService(repo)

	_, err := svc.GetAttendanceSummary(context.Background(), "parent-1", "child-1")
	if !errors.Is(err, attendance.ErrChildNotOwned) {
		t.Fatalf("error = %v, want ErrChildNotOwned", err)
	}
}

func TestListChildrenReturnsOwnChildrenOnly(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-1", FirstName: "Mia"}
	repo.children.children["child-2"] = entity.Child{ID: "child-2", ParentID: "parent-1", FirstName: "Ben"}
	repo.children.children["child-3"] = entity.Child{ID: "child-3", ParentID: "parent-2", FirstName: "Zoe"}
	svc := newTestService(repo)

	resp, err := svc.ListChildren(context.Background(), "parent-1")
	if err != nil {
		t.Fatalf("ListChildren error = %v", err)
	}
	if resp.Total != 2 || len(resp.Children) != 2 {
		t.Fatalf("children = %d (total %d), want 2", len(resp.Children), resp.Total)
	}
	for _, child := range resp.Children {
		if child.ID == "child-3" {
			t.Error("listing includes another parent's child")
		}
	}
}

func TestRecordAttendanceCreatesRecord(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-1"}
	svc := newTestService(repo)

	resp, err := svc.RecordAttendance(context.Background(), "staff-1", "child-1", attendance.RecordAttendanceRequest{
		Date:        "2026-08-31",
		Status:      entity.AttendanceStatusLate,
		CheckInTime: "09:45",
	})
	if err != nil {
		t.Fatalf("RecordAttendance error = %v", err)
	}
	if resp.Status != entity.AttendanceStatusLate {
		t.Errorf("status = %q, want %q", resp.Status, entity.AttendanceStatusLate)
	}
	if len(repo.attendance.records) != 1 {
		t.Fatalf("stored records = %d, want 1", len(repo.attendance.records))
	}
	if got := repo.attendance.records[0].RecordedBy; got != "staff-1" {
		t.Errorf("recorded_by = %q, want %q", got, "staff-1")
	}
}

func TestRecordAttendanceRejectsDuplicateDate(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-1"}
	repo.attendance.records = []entity.AttendanceRecord{
		{ID: "rec-1", ChildID: "child-1", Date: "2026-08-31", Status: entity.AttendanceStatusPresent},
	}
	svc := newTestService(repo)

	_, err := svc.RecordAttendance(context.Background(), "staff-1", "child-1", attendance.RecordAttendanceRequest{
		Date:   "2026-08-31",
		Status: entity.AttendanceStatusAbsent,
	})
	if !errors.Is(err, attendance.ErrAlreadyRecorded) {
		t.Fatalf("error = %v, want ErrAlreadyRecorded", err)
	}
	if len(repo.attendance.records) != 1 {
		t.Errorf("stored records = %d, want 1", len(repo.attendance.records))
	}
}

func TestRecordAttendanceRejectsMalformedDate(t *testing.T) {
	repo := newFakeRepository()
	repo.children.children["child-1"] = entity.Child{ID: "child-1", ParentID: "parent-1"}
	svc := newTestService(repo)

	_, err := svc.RecordAttendance(context.Background(), "staff-1", "child-1", attendance.RecordAttendanceRequest{
		Date:   "31/08/2026",
		Status: entity.AttendanceStatusPresent,
	})
	if !errors.Is(err, attendance.ErrInvalidDate) {
		t.Fatalf("error = %v, want ErrInvalidDate", err)
	}
}

func TestRecordAttendanceUnknownChild(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.RecordAttendance(context.Background(), "staff-1", "missing", attendance.RecordAttendanceRequest{
		Status: entity.AttendanceStatusPresent,
	})
	if !errors.Is(err, attendance.ErrChildNotFound) {
		t.Fatalf("error = %v, want ErrChildNotFound", err)
	}
}

func TestWeekdaysBetween(t *testing.T) {
	// Mon 2026-08-03 through Fri 2026-08-07 is one full work week.
	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC) // Sunday
	to := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)   // Friday

	if got := weekdaysBetween(from, to); got != 5 {
		t.Errorf("weekdaysBetween = %d, want 5", got)
	}
}

func TestWeekdaysBetweenExcludesWeekend(t *testing.T) {
	from := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC) // Friday
	to := time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC)   // Sunday

	if got := weekdaysBetween(from, to); got != 0 {
		t.Errorf("weekdaysBetween = %d, want 0", got)
	}
}

func TestWeekdaysBetweenEmptyRange(t *testing.T) {
	day := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

	if got := weekdaysBetween(day, day); got != 0 {
		t.Errorf("weekdaysBetween = %d, want 0", got)
	}
}
