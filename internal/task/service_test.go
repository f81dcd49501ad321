package task

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/employee-management/internal"
)

func TestTask(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Task Module Suite")
}

// Mock Repository for testing
type mockTaskRepository struct {
	tasks       map[int64]*Task
	nextID      int64
	createError error
	listRows    []Row
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{
		tasks:  make(map[int64]*Task),
		nextID: 1,
	}
}

func (m *mockTaskRepository) Create(assigneeID int64, description, dueDate string) (*Task, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	t := &Task{
		ID:          m.nextID,
		UserID:      assigneeID,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	m.tasks[t.ID] = t
	m.nextID++
	return t, nil
}

func (m *mockTaskRepository) GetByID(id int64) (*Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, internal.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskRepository) ListFor(userID int64) ([]Row, error) {
	return m.listRows, nil
}

func (m *mockTaskRepository) ListAll() ([]Row, error) {
	return m.listRows, nil
}

func (m *mockTaskRepository) Complete(id int64) error {
	if t, ok := m.tasks[id]; ok {
		t.Status = StatusCompleted
	}
	return nil
}

var _ = ginkgo.Describe("TaskService", func() {
	var (
		service  *Service
		mockRepo *mockTaskRepository
		today    = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockTaskRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(os.Stderr, nil)))
		service.now = func() time.Time { return today }
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create a pending task for a valid payload", func() {
			created, err := service.Create(CreateTaskDTO{
				AssigneeID:  2,
				Description: "prepare the quarterly summary",
				DueDate:     "2024-03-20",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Status).To(gomega.Equal(StatusPending))
			gomega.Expect(created.UserID).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("should accept a due date of exactly today", func() {
			_, err := service.Create(CreateTaskDTO{
				AssigneeID:  2,
				Description: "same-day task",
				DueDate:     "2024-03-15",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a due date in the past", func() {
			_, err := service.Create(CreateTaskDTO{
				AssigneeID:  2,
				Description: "too late",
				DueDate:     "2024-03-14",
			})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			gomega.Expect(mockRepo.tasks).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject a blank description", func() {
			_, err := service.Create(CreateTaskDTO{AssigneeID: 2, DueDate: "2024-03-20"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject a missing assignee", func() {
			_, err := service.Create(CreateTaskDTO{Description: "orphan", DueDate: "2024-03-20"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should propagate storage errors untouched", func() {
			mockRepo.createError = errors.New("connection reset")
			_, err := service.Create(CreateTaskDTO{
				AssigneeID:  2,
				Description: "x",
				DueDate:     "2024-03-20",
			})
			gomega.Expect(err).To(gomega.MatchError("connection reset"))
		})
	})

	ginkgo.Describe("Complete", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Create(CreateTaskDTO{
				AssigneeID:  2,
				Description: "dina's task",
				DueDate:     "2024-03-20",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should complete the task for its assignee", func() {
			err := service.Complete(1, 2)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.tasks[1].Status).To(gomega.Equal(StatusCompleted))
		})

		ginkgo.It("should refuse completion by anyone other than the assignee", func() {
			err := service.Complete(1, 3)
			gomega.Expect(err).To(gomega.Equal(internal.ErrUnauthorizedAccess))
			gomega.Expect(mockRepo.tasks[1].Status).To(gomega.Equal(StatusPending))
		})

		ginkgo.It("should surface not-found for an unknown task id", func() {
			err := service.Complete(99, 2)
			gomega.Expect(err).To(gomega.Equal(internal.ErrTaskNotFound))
		})

		ginkgo.It("should stay completed when completed twice", func() {
			gomega.Expect(service.Complete(1, 2)).To(gomega.Succeed())
			gomega.Expect(service.Complete(1, 2)).To(gomega.Succeed())
			gomega.Expect(mockRepo.tasks[1].Status).To(gomega.Equal(StatusCompleted))
		})
	})

	ginkgo.Describe("listing", func() {
		ginkgo.It("should return an empty slice rather than nil when the employee has no tasks", func() {
			rows, err := service.ListOwn(2)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).ToNot(gomega.BeNil())
			gomega.Expect(rows).To(gomega.BeEmpty())
		})

		ginkgo.It("should return an empty slice rather than nil for the admin view", func() {
			rows, err := service.ListAll()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).ToNot(gomega.BeNil())
		})
	})
})
