package monitoring

import (
	"testing"

	"github.com/nutrilens/nutrilens-be/internal/models"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlogService struct {
	generated int
}

func (s *stubBlogService) GetAll() ([]models.Blog, error) { return nil, nil }
func (s *stubBlogService) Generate() (models.Blog, error) {
	s.generated++
	return models.Blog{ID: "blog-1", Title: "Generated"}, nil
}
func (s *stubBlogService) Like(id string) (int, error) { return 0, nil }
func (s *stubBlogService) Comment(blogID, author, text string) (models.BlogComment, error) {
	return models.BlogComment{}, nil
}

func TestNewBlogSchedulerRejectsInvalidCron(t *testing.T) {
	_, err := NewBlogScheduler(&stubBlogService{}, ws.NewHub(), "not a cron expr")
	require.Error(t, err)
}

func TestNewBlogSchedulerComputesNextRun(t *testing.T) {
	s, err := NewBlogScheduler(&stubBlogService{}, ws.NewHub(), "0 8 * * *")
	require.NoError(t, err)
	assert.False(t, s.nextRun.IsZero())
}

func TestPublishGeneratesAndBroadcasts(t *testing.T) {
	svc := &stubBlogService{}
	hub := ws.NewHub()
	go hub.Run()

	s, err := NewBlogScheduler(svc, hub, "* * * * *")
	require.NoError(t, err)

	s.publish()
	assert.Equal(t, 1, svc.generated)
}
