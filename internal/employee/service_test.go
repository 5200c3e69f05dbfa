package employee

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/adminrec/personnel-management/internal"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

type historyCall struct {
	employeeID int64
	positionID int64
}

type mockEmployeeRepository struct {
	employees map[int64]*Employee
	positions map[int64]bool
	deleted   []int64

	openedEntries  []historyCall
	closedEntries  []int64
	historyEntries map[int64][]HistoryEntry

	nextID int64
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: map[int64]*Employee{
			1: {ID: 1, LastName: "Garcia", FirstName: "Laura", DNI: 30111222, Email: "lgarcia@adminrec.com", PositionID: 10},
		},
		positions:      map[int64]bool{10: true, 20: true},
		historyEntries: make(map[int64][]HistoryEntry),
		nextID:         2,
	}
}

func (m *mockEmployeeRepository) List() ([]Employee, error) {
	var out []Employee
	for _, e := range m.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEmployeeRepository) GetByID(id int64) (*Employee, error) {
	if e, ok := m.employees[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, errors.New("employee not found")
}

func (m *mockEmployeeRepository) Create(e *Employee) error {
	e.ID = m.nextID
	m.nextID++
	clone := *e
	m.employees[e.ID] = &clone
	return nil
}

func (m *mockEmployeeRepository) Update(e *Employee) error {
	clone := *e
	m.employees[e.ID] = &clone
	return nil
}

func (m *mockEmployeeRepository) SoftDelete(id int64) error {
	m.deleted = append(m.deleted, id)
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepository) PositionExists(positionID int64) (bool, error) {
	return m.positions[positionID], nil
}

func (m *mockEmployeeRepository) OpenHistoryEntry(employeeID, positionID int64) error {
	m.openedEntries = append(m.openedEntries, historyCall{employeeID, positionID})
	m.historyEntries[employeeID] = append(m.historyEntries[employeeID], HistoryEntry{
		ID:         int64(len(m.historyEntries[employeeID]) + 1),
		PositionID: positionID,
		StartedOn:  time.Now(),
	})
	return nil
}

func (m *mockEmployeeRepository) CloseCurrentHistoryEntry(employeeID int64) error {
	m.closedEntries = append(m.closedEntries, employeeID)
	entries := m.historyEntries[employeeID]
	if len(entries) > 0 {
		now := time.Now()
		entries[len(entries)-1].EndedOn = &now
	}
	return nil
}

func (m *mockEmployeeRepository) HistoryOf(employeeID int64) ([]HistoryEntry, error) {
	return m.historyEntries[employeeID], nil
}

type mockAccountRegistrar struct {
	registered map[int]string
	fail       bool
}

func (m *mockAccountRegistrar) RegisterAccount(dni int, password string) error {
	if m.fail {
		return errors.New("registration failed")
	}
	m.registered[dni] = password
	return nil
}

type mockAttendanceReader struct {
	attendances map[int64][]Attendance
}

func (m *mockAttendanceReader) ListByEmployeeID(employeeID int64) ([]Attendance, error) {
	return m.attendances[employeeID], nil
}

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service     *Service
		repo        *mockEmployeeRepository
		accounts    *mockAccountRegistrar
		attendances *mockAttendanceReader
	)

	validDTO := func() CreateEmployeeDTO {
		return CreateEmployeeDTO{
			EmployeeDTO: EmployeeDTO{
				LastName:   "Perez",
				FirstName:  "Martin",
				DNI:        28999888,
				Email:      "mperez@adminrec.com",
				PositionID: 10,
			},
			Password: "cambiame123",
		}
	}

	ginkgo.BeforeEach(func() {
		repo = newMockEmployeeRepository()
		accounts = &mockAccountRegistrar{registered: make(map[int]string)}
		attendances = &mockAttendanceReader{attendances: make(map[int64][]Attendance)}
		service = NewService(repo, accounts, attendances, slog.Default())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should store the employee, open a history entry and register an account", func() {
			e, err := service.Create(validDTO())

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(e.ID).To(gomega.Equal(int64(2)))
			gomega.Expect(repo.openedEntries).To(gomega.ConsistOf(historyCall{2, 10}))
			gomega.Expect(accounts.registered).To(gomega.HaveKey(28999888))
		})

		ginkgo.It("should reject an unknown position", func() {
			dto := validDTO()
			dto.PositionID = 99

			_, err := service.Create(dto)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodePositionNotFound))
		})

		ginkgo.It("should reject a short password", func() {
			dto := validDTO()
			dto.Password = "short"

			_, err := service.Create(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("at least 8 characters"))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should roll the history when the position changes", func() {
			dto := EmployeeDTO{
				LastName:   "Garcia",
				FirstName:  "Laura",
				DNI:        30111222,
				Email:      "lgarcia@adminrec.com",
				PositionID: 20,
			}

			e, err := service.Update(1, dto)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(e.PositionID).To(gomega.Equal(int64(20)))
			gomega.Expect(repo.closedEntries).To(gomega.ConsistOf(int64(1)))
			gomega.Expect(repo.openedEntries).To(gomega.ConsistOf(historyCall{1, 20}))
		})

		ginkgo.It("should leave the history alone when the position stays", func() {
			dto := EmployeeDTO{
				LastName:   "Garcia",
				FirstName:  "Laura",
				DNI:        30111222,
				Email:      "laura.garcia@adminrec.com",
				PositionID: 10,
			}

			_, err := service.Update(1, dto)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.closedEntries).To(gomega.BeEmpty())
			gomega.Expect(repo.openedEntries).To(gomega.BeEmpty())
		})

		ginkgo.It("should return not found for a missing employee", func() {
			_, err := service.Update(99, EmployeeDTO{
				LastName: "x", FirstName: "y", DNI: 1, Email: "z@z.com", PositionID: 10,
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeEmployeeNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should soft-delete and return the employee", func() {
			e, err := service.Delete(1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(e.DNI).To(gomega.Equal(30111222))
			gomega.Expect(repo.deleted).To(gomega.ConsistOf(int64(1)))
		})
	})

	ginkgo.Describe("Attendances", func() {
		ginkgo.It("should list the employee's check-ins", func() {
			attendances.attendances[1] = []Attendance{
				{ID: 1, CheckedIn: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
			}

			list, err := service.Attendances(1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(list).To(gomega.HaveLen(1))
		})

		ginkgo.It("should return not found for a missing employee", func() {
			_, err := service.Attendances(99)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeEmployeeNotFound))
		})
	})
})
