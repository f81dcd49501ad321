package postgres_test

import (
	"testing"

	"github.com/employee-management/internal/task"
	taskPostgres "github.com/employee-management/internal/task/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTaskPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Task Postgres Suite")
}

// SQLiteUser is a SQLite-compatible users model for the join in the admin listing
type SQLiteUser struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
}

func (SQLiteUser) TableName() string {
	return "users"
}

var _ = Describe("Task PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo task.Repository
	)

	seedUser := func(id int64, username string) {
		err := db.Create(&SQLiteUser{ID: id, Username: username, Role: "employee"}).Error
		Expect(err).NotTo(HaveOccurred())
	}

	seedTask := func(assigneeID int64, description, dueDate string) *task.Task {
		t, err := repo.Create(assigneeID, description, dueDate)
		Expect(err).NotTo(HaveOccurred())
		return t
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{}, &task.Task{})
		Expect(err).NotTo(HaveOccurred())

		repo = taskPostgres.NewTaskRepository(db)

		seedUser(1, "dina")
		seedUser(2, "bagus")
	})

	Describe("Create", func() {
		It("should insert a pending task", func() {
			created := seedTask(1, "write the release notes", "2024-03-20")
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Status).To(Equal(task.StatusPending))

			loaded, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Description).To(Equal("write the release notes"))
			Expect(loaded.DueDate).To(Equal("2024-03-20"))
		})
	})

	Describe("GetByID", func() {
		It("should surface a typed not-found error for unknown ids", func() {
			_, err := repo.GetByID(12345)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("task not found"))
		})
	})

	Describe("listing order", func() {
		BeforeEach(func() {
			// deliberately seeded out of order
			late := seedTask(1, "completed late task", "2024-03-25")
			seedTask(1, "pending late task", "2024-03-30")
			seedTask(1, "pending early task", "2024-03-16")
			early := seedTask(1, "completed early task", "2024-03-10")

			Expect(repo.Complete(late.ID)).To(Succeed())
			Expect(repo.Complete(early.ID)).To(Succeed())
		})

		It("should list pending tasks before completed ones, each by due date", func() {
			rows, err := repo.ListFor(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(4))

			var descriptions []string
			for _, r := range rows {
				descriptions = append(descriptions, r.Description)
			}
			Expect(descriptions).To(Equal([]string{
				"pending early task",
				"pending late task",
				"completed early task",
				"completed late task",
			}))
		})

		It("should only return the requested employee's tasks", func() {
			seedTask(2, "someone else's task", "2024-03-18")

			rows, err := repo.ListFor(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Description).To(Equal("someone else's task"))
		})

		It("should join usernames in the admin listing, same order", func() {
			seedTask(2, "bagus pending task", "2024-03-01")

			rows, err := repo.ListAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(5))

			Expect(rows[0].Username).To(Equal("bagus"))
			Expect(rows[0].Description).To(Equal("bagus pending task"))
			Expect(rows[0].Status).To(Equal(task.StatusPending))

			Expect(rows[4].Description).To(Equal("completed late task"))
			Expect(rows[4].Status).To(Equal(task.StatusCompleted))
		})

		It("should return an empty result, not an error, for an employee with no tasks", func() {
			rows, err := repo.ListFor(99)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("Complete", func() {
		It("should transition a pending task to completed", func() {
			created := seedTask(1, "one shot", "2024-03-20")

			Expect(repo.Complete(created.ID)).To(Succeed())

			loaded, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Status).To(Equal(task.StatusCompleted))
		})

		It("should be a state-preserving no-op on an already completed task", func() {
			created := seedTask(1, "twice done", "2024-03-20")

			Expect(repo.Complete(created.ID)).To(Succeed())
			Expect(repo.Complete(created.ID)).To(Succeed())

			loaded, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Status).To(Equal(task.StatusCompleted))
		})
	})
})
