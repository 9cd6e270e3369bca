package monitoring

import (
	"time"

	"github.com/nutrilens/nutrilens-be/internal/services"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// BlogScheduler publishes a new blog post on a cron schedule and
// broadcasts it to websocket subscribers.
type BlogScheduler struct {
	blogSvc  services.BlogServiceProvider
	hub      *ws.Hub
	schedule cron.Schedule
	nextRun  time.Time
	ticker   *time.Ticker
	done     chan bool
}

// NewBlogScheduler creates a scheduler from a standard cron expression.
func NewBlogScheduler(blogSvc services.BlogServiceProvider, hub *ws.Hub, cronExpr string) (*BlogScheduler, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &BlogScheduler{
		blogSvc:  blogSvc,
		hub:      hub,
		schedule: schedule,
		nextRun:  schedule.Next(time.Now()),
		done:     make(chan bool),
	}, nil
}

// Run starts the scheduler's ticking loop.
func (s *BlogScheduler) Run() {
	log.Info().Time("next_run", s.nextRun).Msg("Starting blog scheduler...")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping blog scheduler.")
			return
		case <-s.ticker.C:
			now := time.Now()
			if now.After(s.nextRun) {
				go s.publish() // Run in a goroutine to not block the scheduler
				s.nextRun = s.schedule.Next(now)
			}
		}
	}
}

// Stop halts the scheduler.
func (s *BlogScheduler) Stop() {
	s.done <- true
}

func (s *BlogScheduler) publish() {
	blog, err := s.blogSvc.Generate()
	if err != nil {
		log.Error().Err(err).Msg("Scheduled blog generation failed")
		return
	}
	log.Info().Str("blog_id", blog.ID).Str("title", blog.Title).Msg("Published scheduled blog post")
	s.hub.BroadcastTo(ws.TopicBlogs, ws.NewBlogPublishedMessage(blog))
}
