package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/progress"
	"github.com/alexanderramin/studyplan/internal/repository"
)

type progressService struct {
	curr     *curriculum.Curriculum
	progress repository.ProgressRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewProgressService(
	curr *curriculum.Curriculum,
	progressRepo repository.ProgressRepo,
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	observer UseCaseObserver,
) ProgressService {
	return &progressService{
		curr:     curr,
		progress: progressRepo,
		sessions: sessions,
		uow:      uow,
		observer: observerOrNoop(observer),
		now:      time.Now,
	}
}

func (s *progressService) MarkTopicComplete(ctx context.Context, topicID string, completed bool) error {
	up, err := s.progress.Load(ctx)
	if err != nil {
		return err
	}
	tr := progress.NewTracker(s.curr, up)
	if err := tr.SetTopicComplete(topicID, completed); err != nil {
		return err
	}

	var completedAt *time.Time
	if completed {
		now := s.now().UTC()
		completedAt = &now
	}

	return observe(ctx, s.observer, "progress.mark_topic", map[string]any{
		"topic_id":  topicID,
		"completed": completed,
	}, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txProgress := repository.NewSQLiteProgressRepo(tx)
			if err := txProgress.SetTopicCompleted(ctx, topicID, completed, completedAt); err != nil {
				return err
			}
			return txProgress.SaveTotals(ctx, up.TotalHoursStudied, up.LastUpdated)
		})
	})
}

func (s *progressService) MarkSubtopicComplete(ctx context.Context, topicID string, index int, completed bool) error {
	up, err := s.progress.Load(ctx)
	if err != nil {
		return err
	}
	tr := progress.NewTracker(s.curr, up)
	if err := tr.SetSubtopicComplete(topicID, index, completed); err != nil {
		return err
	}

	tp := up.TopicsProgress[topicID]
	var record domain.SubtopicProgress
	for _, sp := range tp.SubtopicsProgress {
		if sp.SubtopicIndex == index {
			record = sp
			break
		}
	}

	return observe(ctx, s.observer, "progress.mark_subtopic", map[string]any{
		"topic_id":  topicID,
		"index":     index,
		"completed": completed,
	}, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txProgress := repository.NewSQLiteProgressRepo(tx)
			if err := txProgress.UpsertSubtopic(ctx, topicID, record); err != nil {
				return err
			}
			if err := txProgress.SetTopicCompleted(ctx, topicID, tp.Completed, tp.CompletedAt); err != nil {
				return err
			}
			return txProgress.SaveTotals(ctx, up.TotalHoursStudied, up.LastUpdated)
		})
	})
}

// LogSession records a study sitting. A completed session also marks
// its subtopics complete and adds the actual hours to the running total.
func (s *progressService) LogSession(ctx context.Context, session *domain.StudySession) error {
	topic, ok := s.curr.Topic(session.TopicID)
	if !ok {
		return fmt.Errorf("topic %q: %w", session.TopicID, domain.ErrUnknownTopic)
	}
	for _, idx := range session.SubtopicIndices {
		if idx < 0 || idx >= len(topic.Subtopics) {
			return fmt.Errorf("topic %q index %d of %d: %w",
				session.TopicID, idx, len(topic.Subtopics), domain.ErrSubtopicOutOfRange)
		}
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := s.now().UTC()
	if session.Date.IsZero() {
		session.Date = domain.DateOnly(now)
	}
	session.CreatedAt = now

	up, err := s.progress.Load(ctx)
	if err != nil {
		return err
	}
	tr := progress.NewTracker(s.curr, up)
	tr.AddStudyHours(session.ActualHours)
	if session.Completed {
		for _, idx := range session.SubtopicIndices {
			if err := tr.SetSubtopicComplete(session.TopicID, idx, true); err != nil {
				return err
			}
		}
	}

	tp := up.TopicsProgress[session.TopicID]

	return observe(ctx, s.observer, "progress.log_session", map[string]any{
		"topic_id": session.TopicID,
		"hours":    session.ActualHours,
	}, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txSessions := repository.NewSQLiteSessionRepo(tx)
			txProgress := repository.NewSQLiteProgressRepo(tx)

			if err := txSessions.Create(ctx, session); err != nil {
				return err
			}
			if session.Completed && tp != nil {
				for _, sp := range tp.SubtopicsProgress {
					if !containsIndex(session.SubtopicIndices, sp.SubtopicIndex) {
						continue
					}
					if err := txProgress.UpsertSubtopic(ctx, session.TopicID, sp); err != nil {
						return err
					}
				}
				if err := txProgress.SetTopicCompleted(ctx, session.TopicID, tp.Completed, tp.CompletedAt); err != nil {
					return err
				}
			}
			return txProgress.SaveTotals(ctx, up.TotalHoursStudied, up.LastUpdated)
		})
	})
}

func (s *progressService) ListSessions(ctx context.Context, date time.Time) ([]*domain.StudySession, error) {
	return s.sessions.ListByDate(ctx, domain.DateOnly(date))
}

func (s *progressService) ListRecentSessions(ctx context.Context, days int) ([]*domain.StudySession, error) {
	if days <= 0 {
		days = 7
	}
	return s.sessions.ListRecent(ctx, days)
}

func (s *progressService) DeleteSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}
