package attendance

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/adminrec/personnel-management/internal"
)

func TestAttendance(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Attendance Module Suite")
}

type mockAttendanceRepository struct {
	employeesByDNI map[int]int64
	records        map[int64][]Attendance
	nextID         int64
}

func newMockAttendanceRepository() *mockAttendanceRepository {
	return &mockAttendanceRepository{
		employeesByDNI: map[int]int64{30111222: 1, 28999888: 2},
		records:        make(map[int64][]Attendance),
		nextID:         1,
	}
}

func (m *mockAttendanceRepository) EmployeeIDByDNI(dni int) (int64, error) {
	if id, ok := m.employeesByDNI[dni]; ok {
		return id, nil
	}
	return 0, errors.New("employee not found")
}

func (m *mockAttendanceRepository) HasCheckInOn(employeeID int64, day time.Time) (bool, error) {
	y, mo, d := day.Date()
	for _, a := range m.records[employeeID] {
		ay, amo, ad := a.CheckedIn.Date()
		if ay == y && amo == mo && ad == d {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepository) Create(a *Attendance) error {
	a.ID = m.nextID
	m.nextID++
	m.records[a.EmployeeID] = append(m.records[a.EmployeeID], *a)
	return nil
}

func (m *mockAttendanceRepository) ListByEmployeeID(employeeID int64) ([]Attendance, error) {
	return m.records[employeeID], nil
}

var _ = ginkgo.Describe("AttendanceService", func() {
	var (
		service *Service
		repo    *mockAttendanceRepository
		clock   time.Time
	)

	ginkgo.BeforeEach(func() {
		repo = newMockAttendanceRepository()
		clock = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		service = NewService(repo, slog.Default()).WithClock(func() time.Time { return clock })
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should record a check-in for the employee behind the dni", func() {
			a, err := service.Register(30111222)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.EmployeeID).To(gomega.Equal(int64(1)))
			gomega.Expect(a.CheckedIn).To(gomega.Equal(clock))
		})

		ginkgo.It("should reject a second check-in on the same day", func() {
			_, err := service.Register(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			clock = clock.Add(6 * time.Hour)

			_, err = service.Register(30111222)
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeAttendanceRegistered))
		})

		ginkgo.It("should allow a check-in the next day", func() {
			_, err := service.Register(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			clock = clock.Add(24 * time.Hour)

			_, err = service.Register(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			list, err := service.List(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(list).To(gomega.HaveLen(2))
		})

		ginkgo.It("should not mix up employees", func() {
			_, err := service.Register(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Register(28999888)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject an unknown dni", func() {
			_, err := service.Register(11111111)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeEmployeeNotFound))
		})
	})
})
