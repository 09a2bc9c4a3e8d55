package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plannerhq/planner/internal/model"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
)

type RoutineRepository interface {
	Create(routine *model.RecurringRoutine) error
	ByID(userID, routineID string) (*model.RecurringRoutine, error)
	Routines(userID string) ([]*model.RecurringRoutine, error)
	ForDay(userID, weekday, category string) ([]*model.RecurringRoutine, error)
	Update(routine *model.RecurringRoutine) error
	Delete(userID, routineID string) error
}

type routineRepository struct {
	db *sqlx.DB
}

func NewRoutineRepository(db *sqlx.DB) RoutineRepository {
	return &routineRepository{db: db}
}

func (r *routineRepository) Create(routine *model.RecurringRoutine) error {
	query := `INSERT INTO recurring_routines (id, user_id, activity_name, start_time, end_time, day_of_week, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		routine.ID,
		routine.UserID,
		routine.ActivityName,
		routine.StartTime,
		routine.EndTime,
		routine.DayOfWeek,
		routine.CreatedAt,
	)

	return err
}

func (r *routineRepository) ByID(userID, routineID string) (*model.RecurringRoutine, error) {
	routine := &model.RecurringRoutine{}
	query := `SELECT * FROM recurring_routines WHERE id = $1 AND user_id = $2`

	err := r.db.Get(routine, query, routineID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrRoutineNotFound
	}

	return routine, err
}

func (r *routineRepository) Routines(userID string) ([]*model.RecurringRoutine, error) {
	var routines []*model.RecurringRoutine
	query := `SELECT * FROM recurring_routines WHERE user_id = $1 ORDER BY day_of_week, start_time`

	err := r.db.Select(&routines, query, userID)
	if err != nil {
		return nil, err
	}

	return routines, nil
}

// ForDay returns the routines applying on a date: exact weekday name match
// or the date's Weekday/Weekend category, sorted by start time.
func (r *routineRepository) ForDay(userID, weekday, category string) ([]*model.RecurringRoutine, error) {
	var routines []*model.RecurringRoutine
	query := `SELECT * FROM recurring_routines
	          WHERE user_id = $1 AND day_of_week IN ($2, $3)
	          ORDER BY start_time ASC`

	err := r.db.Select(&routines, query, userID, weekday, category)
	if err != nil {
		return nil, err
	}

	return routines, nil
}

func (r *routineRepository) Update(routine *model.RecurringRoutine) error {
	query := `UPDATE recurring_routines
	          SET activity_name = $1, start_time = $2, end_time = $3, day_of_week = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		routine.ActivityName,
		routine.StartTime,
		routine.EndTime,
		routine.DayOfWeek,
		routine.ID,
		routine.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

func (r *routineRepository) Delete(userID, routineID string) error {
	query := `DELETE FROM recurring_routines WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, routineID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRoutineNotFound
	}

	return nil
}
