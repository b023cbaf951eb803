package service_test

import (
	"context"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/memory"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/service"
	"taskapp/internal/core/util"
	"taskapp/pkg/config"
)

type TaskServiceTestSuite struct {
	suite.Suite
	Repo    *memory.Repository
	Config  *config.AppConfig
	Service *service.TaskService
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.Repo = memory.NewRepository()
	s.Config = config.GetDefaultConfig()
	s.Service = service.NewTaskService(s.Repo, s.Config, zerolog.Nop())
}

func TestTaskServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) createTasks(owner string, n int) {
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Task %d", i)
		_, err := s.Service.Create(context.Background(), owner+":"+title, owner, title, "")
		Expect(err).To(BeNil())
	}
}

func (s *TaskServiceTestSuite) TestCreateStoresTask() {
	task, err := s.Service.Create(context.Background(), "o:Write docs", "o", "Write docs", "long form")

	Expect(err).To(BeNil())
	Expect(task.ID).To(Equal("o:Write docs"))
	Expect(task.OwnerID).To(Equal("o"))
	Expect(task.IsCompleted).To(BeFalse())
	Expect(task.DeletedAt).To(BeNil())
}

func (s *TaskServiceTestSuite) TestCreateDoesNotVerifyOwner() {
	_, err := s.Service.Create(context.Background(), "t1", "nobody-registered", "title", "")

	Expect(err).To(BeNil())
}

func (s *TaskServiceTestSuite) TestCreateRejectsEmptyTitle() {
	_, err := s.Service.Create(context.Background(), "t1", "o", "", "")

	assert.Error(s.T(), err)
	assert.True(s.T(), util.IsInvalidFormat(err))
}

func (s *TaskServiceTestSuite) TestCreateAcceptsWhitespaceTitle() {
	// The service checks the raw value; trimming is the handler's job.
	task, err := s.Service.Create(context.Background(), "t1", "o", "   ", "")

	Expect(err).To(BeNil())
	Expect(task.Title).To(Equal("   "))
}

func (s *TaskServiceTestSuite) TestCompleteMarksTaskDone() {
	s.Service.Create(context.Background(), "t1", "o", "title", "")

	task, err := s.Service.Complete(context.Background(), "t1")

	Expect(err).To(BeNil())
	Expect(task.IsCompleted).To(BeTrue())
}

func (s *TaskServiceTestSuite) TestCompleteTwiceIsIdempotent() {
	s.Service.Create(context.Background(), "t1", "o", "title", "")

	first, err := s.Service.Complete(context.Background(), "t1")
	Expect(err).To(BeNil())
	Expect(first.IsCompleted).To(BeTrue())

	second, err := s.Service.Complete(context.Background(), "t1")
	Expect(err).To(BeNil())
	Expect(second.IsCompleted).To(BeTrue())
}

func (s *TaskServiceTestSuite) TestCompleteMissingTaskFails() {
	_, err := s.Service.Complete(context.Background(), "ghost")

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestListForOwnerTruncatesToPageSize() {
	s.createTasks("o", 10)

	size := 3
	tasks := s.Service.ListForOwner(context.Background(), "o", 1, &size)

	Expect(tasks).To(HaveLen(3))
	Expect(tasks[0].Title).To(Equal("Task 1"))
	Expect(tasks[1].Title).To(Equal("Task 2"))
	Expect(tasks[2].Title).To(Equal("Task 3"))
}

func (s *TaskServiceTestSuite) TestListForOwnerIgnoresPage() {
	s.createTasks("o", 10)

	size := 3
	pageOne := s.Service.ListForOwner(context.Background(), "o", 1, &size)
	pageFour := s.Service.ListForOwner(context.Background(), "o", 4, &size)

	Expect(pageFour).To(Equal(pageOne))
}

func (s *TaskServiceTestSuite) TestListForOwnerDefaultsPageSize() {
	s.createTasks("o", 25)

	tasks := s.Service.ListForOwner(context.Background(), "o", 1, nil)

	Expect(tasks).To(HaveLen(20))
}

func (s *TaskServiceTestSuite) TestListForOwnerClampsPageSize() {
	s.createTasks("o", 5)

	size := 500
	tasks := s.Service.ListForOwner(context.Background(), "o", 1, &size)

	Expect(tasks).To(HaveLen(5))
}

func (s *TaskServiceTestSuite) TestDeleteRemovesEvenWithSoftDeleteEnabled() {
	// EnableSoftDelete is on by default, but the repository deletes
	// physically regardless. The task is gone, not flagged.
	Expect(s.Config.EnableSoftDelete).To(BeTrue())

	s.Service.Create(context.Background(), "t1", "o", "title", "")
	s.Service.Delete(context.Background(), "t1")

	_, err := s.Repo.GetTask(context.Background(), "t1")
	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestDeleteMissingTaskIsNoOp() {
	s.Service.Delete(context.Background(), "ghost")
	s.Service.Delete(context.Background(), "ghost")
}
