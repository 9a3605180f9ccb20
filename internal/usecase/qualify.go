package usecase

import (
	"context"
	"errors"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
)

// StandardVerdict is one standard held against one swim.
type StandardVerdict struct {
	Standard      domain.TimeStandard `json:"standard"`
	Met           bool                `json:"met"`
	MarginSeconds float64             `json:"margin_seconds"` // negative = under the cut
}

// SwimEvaluation is the full qualification picture for a single swim.
type SwimEvaluation struct {
	Swim     domain.SwimTime   `json:"swim"`
	Event    domain.Event      `json:"event"`
	AgeGroup string            `json:"age_group"`
	Verdicts []StandardVerdict `json:"verdicts"`
	// NextUnmet is the closest cut still out of reach, nil when every
	// applicable standard is met.
	NextUnmet *StandardVerdict `json:"next_unmet,omitempty"`
}

// BestTime pairs a swimmer's fastest swim in an event with the event itself.
type BestTime struct {
	Swim          domain.SwimTime `json:"swim"`
	Event         domain.Event    `json:"event"`
	TimeFormatted string          `json:"time_formatted"`
}

// QualifyUsecase matches recorded swims against cut time standards.
type QualifyUsecase struct {
	Repo repository.Repo
}

func NewQualifyUsecase(r repository.Repo) *QualifyUsecase {
	return &QualifyUsecase{Repo: r}
}

// EvaluateSwim finds every standard applicable to the swim - same gender, the
// swimmer's age group on the swim date (or no age restriction), qualifying
// window containing the date - on the swim's event and its course
// equivalents, and reports met/missed with margins.
func (u *QualifyUsecase) EvaluateSwim(ctx context.Context, timeID, sanctioningBody string) (SwimEvaluation, error) {
	swim, err := u.Repo.GetSwimTime(ctx, timeID)
	if err != nil {
		return SwimEvaluation{}, mapRepoErr(err)
	}
	return u.evaluate(ctx, swim, sanctioningBody)
}

func (u *QualifyUsecase) evaluate(ctx context.Context, swim domain.SwimTime, sanctioningBody string) (SwimEvaluation, error) {
	event, err := u.Repo.GetEvent(ctx, swim.EventID)
	if err != nil {
		return SwimEvaluation{}, mapRepoErr(err)
	}
	swimmer, err := u.Repo.GetSwimmer(ctx, swim.SwimmerID)
	if err != nil {
		return SwimEvaluation{}, mapRepoErr(err)
	}

	ageGroup := swimmer.AgeGroupOn(swim.SwimDate)
	eventIDs, err := u.equivalentEventIDs(ctx, event)
	if err != nil {
		return SwimEvaluation{}, err
	}

	standards, err := u.Repo.StandardsForEvents(ctx, eventIDs, swimmer.Gender, ageGroup, swim.SwimDate, sanctioningBody)
	if err != nil {
		return SwimEvaluation{}, err
	}

	eval := SwimEvaluation{Swim: swim, Event: event, AgeGroup: ageGroup}
	for _, ts := range standards {
		v := StandardVerdict{
			Standard:      ts,
			Met:           swim.MeetsStandard(ts.Centiseconds),
			MarginSeconds: swim.MarginTo(ts.Centiseconds),
		}
		eval.Verdicts = append(eval.Verdicts, v)
	}
	eval.NextUnmet = nextUnmet(eval.Verdicts)
	return eval, nil
}

// nextUnmet picks the unmet standard closest above the swim: the smallest
// positive margin. A non-positive margin means the clock beat the cut but the
// swim didn't count (DQ, unofficial); those standards aren't a target.
func nextUnmet(verdicts []StandardVerdict) *StandardVerdict {
	var best *StandardVerdict
	for i := range verdicts {
		v := &verdicts[i]
		if v.Met || v.MarginSeconds <= 0 {
			continue
		}
		if best == nil || v.MarginSeconds < best.MarginSeconds {
			best = v
		}
	}
	return best
}

// equivalentEventIDs resolves the event plus its cross-course equivalents to
// database ids, skipping equivalents that have never been recorded.
func (u *QualifyUsecase) equivalentEventIDs(ctx context.Context, event domain.Event) ([]string, error) {
	ids := []string{event.ID}
	for _, course := range []domain.Course{domain.SCY, domain.SCM, domain.LCM} {
		if course == event.Course {
			continue
		}
		eq := event.Equivalent(course)
		found, err := u.Repo.FindEvent(ctx, eq.Stroke, eq.Distance, eq.Course)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, found.ID)
	}
	return ids, nil
}

// BestTimes returns the swimmer's fastest valid swim per event.
func (u *QualifyUsecase) BestTimes(ctx context.Context, swimmerID string) ([]BestTime, error) {
	if _, err := u.Repo.GetSwimmer(ctx, swimmerID); err != nil {
		return nil, mapRepoErr(err)
	}
	swims, err := u.Repo.BestTimes(ctx, swimmerID)
	if err != nil {
		return nil, err
	}
	out := make([]BestTime, 0, len(swims))
	for _, swim := range swims {
		event, err := u.Repo.GetEvent(ctx, swim.EventID)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		out = append(out, BestTime{
			Swim:          swim,
			Event:         event,
			TimeFormatted: domain.FormatCentiseconds(swim.Centiseconds),
		})
	}
	return out, nil
}

// QualificationReport evaluates each of the swimmer's best times against the
// standards that applied on the day it was swum.
func (u *QualifyUsecase) QualificationReport(ctx context.Context, swimmerID, sanctioningBody string) ([]SwimEvaluation, error) {
	if _, err := u.Repo.GetSwimmer(ctx, swimmerID); err != nil {
		return nil, mapRepoErr(err)
	}
	swims, err := u.Repo.BestTimes(ctx, swimmerID)
	if err != nil {
		return nil, err
	}
	var out []SwimEvaluation
	for _, swim := range swims {
		eval, err := u.evaluate(ctx, swim, sanctioningBody)
		if err != nil {
			return nil, err
		}
		out = append(out, eval)
	}
	return out, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
