package request

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/core/events"
)

func TestRequest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Request Module Suite")
}

type mockRequestRepository struct {
	employeesByDNI map[int]int64
	requests       map[int64]*Request
	statusWrites   int
	nextID         int64
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{
		employeesByDNI: map[int]int64{30111222: 1, 28999888: 2},
		requests:       make(map[int64]*Request),
		nextID:         1,
	}
}

func (m *mockRequestRepository) EmployeeIDByDNI(dni int) (int64, error) {
	if id, ok := m.employeesByDNI[dni]; ok {
		return id, nil
	}
	return 0, errors.New("employee not found")
}

func (m *mockRequestRepository) Create(req *Request) error {
	req.ID = m.nextID
	m.nextID++
	clone := *req
	m.requests[req.ID] = &clone
	return nil
}

func (m *mockRequestRepository) GetByID(id int64) (*Request, error) {
	if req, ok := m.requests[id]; ok {
		clone := *req
		return &clone, nil
	}
	return nil, errors.New("request not found")
}

func (m *mockRequestRepository) UpdateStatus(id int64, status Status) error {
	m.requests[id].Status = status
	m.statusWrites++
	return nil
}

func (m *mockRequestRepository) ListByEmployeeID(employeeID int64) ([]Request, error) {
	var out []Request
	for _, req := range m.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockRequestRepository) ListBySupervisorDNI(dni int) ([]Request, error) {
	var out []Request
	for _, req := range m.requests {
		out = append(out, *req)
	}
	return out, nil
}

var _ = ginkgo.Describe("RequestService", func() {
	var (
		service *Service
		repo    *mockRequestRepository
		bus     *events.EventBus
	)

	ginkgo.BeforeEach(func() {
		repo = newMockRequestRepository()
		bus = events.NewEventBus(slog.Default())
		service = NewService(repo, bus, slog.Default())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should start every request as PENDIENTE", func() {
			req, err := service.Create(30111222, CreateRequestDTO{
				RequestType:  "vacaciones",
				DurationDays: 10,
				Reason:       "family trip",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(req.Status).To(gomega.Equal(StatusPending))
			gomega.Expect(req.RequestType).To(gomega.Equal(TypeVacation))
			gomega.Expect(req.EmployeeID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should reject an unknown request type", func() {
			_, err := service.Create(30111222, CreateRequestDTO{
				RequestType:  "SABBATICAL",
				DurationDays: 10,
				Reason:       "no",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidRequestType))
		})

		ginkgo.It("should reject non-positive durations", func() {
			_, err := service.Create(30111222, CreateRequestDTO{
				RequestType:  "PERMISO",
				DurationDays: 0,
				Reason:       "x",
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("duration_days"))
		})

		ginkgo.It("should reject an unknown dni", func() {
			_, err := service.Create(11111111, CreateRequestDTO{
				RequestType:  "LICENCIA",
				DurationDays: 2,
				Reason:       "medical",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeEmployeeNotFound))
		})
	})

	ginkgo.Describe("ChangeStatus", func() {
		var requestID int64

		ginkgo.BeforeEach(func() {
			req, err := service.Create(30111222, CreateRequestDTO{
				RequestType:  "PERMISO",
				DurationDays: 1,
				Reason:       "appointment",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			requestID = req.ID
		})

		ginkgo.It("should resolve the request and publish the change", func() {
			var published []events.Event
			bus.Subscribe(events.EventRequestStatusChanged, func(_ context.Context, e events.Event) error {
				published = append(published, e)
				return nil
			})

			req, err := service.ChangeStatus(requestID, ChangeStatusDTO{Status: "aceptado"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(req.Status).To(gomega.Equal(StatusAccepted))
			gomega.Expect(published).To(gomega.HaveLen(1))
		})

		ginkgo.It("should not write or publish when the status already matches", func() {
			var published []events.Event
			bus.Subscribe(events.EventRequestStatusChanged, func(_ context.Context, e events.Event) error {
				published = append(published, e)
				return nil
			})

			req, err := service.ChangeStatus(requestID, ChangeStatusDTO{Status: "PENDIENTE"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(req.Status).To(gomega.Equal(StatusPending))
			gomega.Expect(repo.statusWrites).To(gomega.BeZero())
			gomega.Expect(published).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject an unknown status", func() {
			_, err := service.ChangeStatus(requestID, ChangeStatusDTO{Status: "MAYBE"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidRequestStatus))
		})

		ginkgo.It("should return not found for a missing request", func() {
			_, err := service.ChangeStatus(999, ChangeStatusDTO{Status: "RECHAZADO"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeRequestNotFound))
		})
	})

	ginkgo.Describe("ListOwn", func() {
		ginkgo.It("should only return the caller's requests", func() {
			_, err := service.Create(30111222, CreateRequestDTO{RequestType: "PERMISO", DurationDays: 1, Reason: "a"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Create(28999888, CreateRequestDTO{RequestType: "VACACIONES", DurationDays: 5, Reason: "b"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			own, err := service.ListOwn(30111222)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(own).To(gomega.HaveLen(1))
			gomega.Expect(own[0].EmployeeID).To(gomega.Equal(int64(1)))
		})
	})
})
