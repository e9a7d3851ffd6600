package storage

import (
	"fmt"

	"github.com/vovakirdan/powerpong/internal/games/powerpong"
)

// NewRunRecord converts a finished game into a journal entry.
func NewRunRecord(res powerpong.RunResult, source string) (RunRecord, error) {
	snap, err := res.Final.Encode()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: %w", err)
	}

	collected := 0
	for _, n := range res.Stats.PowerUps {
		collected += n
	}

	return RunRecord{
		Source:       source,
		Seed:         res.Seed,
		EndReason:    string(res.End),
		Frames:       int64(res.Stats.Frames), //#nosec G115 -- frame counts fit
		Hits:         res.Stats.Hits,
		Misses:       res.Stats.Misses,
		LivesLost:    res.Stats.LivesLost,
		BestScore:    res.Stats.BestScore,
		Score:        res.Score,
		LivesLeft:    res.LivesLeft,
		ExtraBalls:   res.Stats.Rewards[powerpong.RewardExtraBall],
		PowerUpDrops: res.Stats.Rewards[powerpong.RewardPowerUp],
		Bonuses:      res.Stats.Rewards[powerpong.RewardBonusPoints],
		Collected:    collected,
		Snapshot:     snap,
	}, nil
}

// DecodeSnapshot returns the final state stored with a run.
func (r RunRecord) DecodeSnapshot() (powerpong.Snapshot, error) {
	if len(r.Snapshot) == 0 {
		return powerpong.Snapshot{}, fmt.Errorf("storage: run %d has no snapshot", r.ID)
	}
	return powerpong.DecodeSnapshot(r.Snapshot)
}
