package history

import (
	"context"
	"database/sql"
	"teenpatti-server/pkg/db"
	"teenpatti-server/pkg/deck"
	"teenpatti-server/pkg/teenpatti"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// recordTimeout bounds the background insert in Record
const recordTimeout = time.Second * 5

const evaluationColumns = `
evaluations.id,
evaluations.cards,
evaluations.category,
evaluations.hand_rank,
evaluations.total_hands,
evaluations.percent_better,
evaluations.remote_addr,
evaluations.created`

// Evaluation is a record in the `evaluations` table
type Evaluation struct {
	ID            string    `json:"id"`
	Cards         string    `json:"cards"`
	Category      string    `json:"category"`
	Rank          int       `json:"rank"`
	TotalHands    int       `json:"totalHands"`
	PercentBetter float64   `json:"percentBetter"`
	RemoteAddr    string    `json:"-"`
	Created       time.Time `json:"created"`
}

func getEvaluationByRow(row db.Scanner) (*Evaluation, error) {
	var evaluation Evaluation
	if err := row.Scan(&evaluation.ID, &evaluation.Cards, &evaluation.Category, &evaluation.Rank,
		&evaluation.TotalHands, &evaluation.PercentBetter, &evaluation.RemoteAddr, &evaluation.Created); err != nil {
		return nil, err
	}

	return &evaluation, nil
}

// CreateEvaluation records the stats of an evaluated hand
func CreateEvaluation(ctx context.Context, hand teenpatti.Hand, stats *teenpatti.HandStats, remoteAddr string) (*Evaluation, error) {
	const query = `
INSERT INTO evaluations (id, cards, category, hand_rank, total_hands, percent_better, remote_addr)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + evaluationColumns

	row := db.Instance().QueryRowContext(ctx, query,
		uuid.New().String(),
		deck.CardsToString(hand.Cards()),
		stats.Category,
		stats.Rank,
		stats.TotalHands,
		stats.PercentBetter,
		remoteAddr)

	return getEvaluationByRow(row)
}

// GetEvaluationByID returns the evaluation with the ID
func GetEvaluationByID(ctx context.Context, id string) (*Evaluation, error) {
	const query = `
SELECT ` + evaluationColumns + `
FROM evaluations
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getEvaluationByRow(row)
}

// GetEvaluations returns recorded evaluations, most recent first
func GetEvaluations(ctx context.Context, offset int64, limit int) ([]*Evaluation, error) {
	const query = `
SELECT ` + evaluationColumns + `
FROM evaluations
ORDER BY created DESC, id ASC
OFFSET $1
LIMIT $2`

	return getEvaluations(db.Instance().QueryContext(ctx, query, offset, limit))
}

func getEvaluations(rows *sql.Rows, err error) ([]*Evaluation, error) {
	if err != nil {
		return nil, err
	}

	evaluations := make([]*Evaluation, 0)
	for rows.Next() {
		evaluation, err := getEvaluationByRow(rows)
		if err != nil {
			return nil, err
		}

		evaluations = append(evaluations, evaluation)
	}

	return evaluations, nil
}

// Record persists the evaluation in the background
// Failures are logged and never surfaced to the caller
func Record(hand teenpatti.Hand, stats *teenpatti.HandStats, remoteAddr string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if _, err := CreateEvaluation(ctx, hand, stats, remoteAddr); err != nil {
			logrus.WithError(err).Error("could not record evaluation")
		}
	}()
}
