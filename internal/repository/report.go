package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plannerhq/planner/internal/model"
)

var (
	ErrDailyReportNotFound = errors.New("daily report not found")
	ErrGoalReportNotFound  = errors.New("goal report not found")
)

type DailyReportRepository interface {
	Create(report *model.DailyReport) error
	ByIDForUser(userID, reportID string) (*model.DailyReport, error)
	ByGoal(goalID string) ([]*model.DailyReport, error)
	Update(report *model.DailyReport) error
	Delete(userID, reportID string) error
}

type dailyReportRepository struct {
	db *sqlx.DB
}

func NewDailyReportRepository(db *sqlx.DB) DailyReportRepository {
	return &dailyReportRepository{db: db}
}

func (r *dailyReportRepository) Create(report *model.DailyReport) error {
	query := `INSERT INTO daily_reports (id, goal_id, report_date, model_notes, user_notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		report.ID,
		report.GoalID,
		report.ReportDate,
		report.ModelNotes,
		report.UserNotes,
		report.CreatedAt,
	)

	return err
}

func (r *dailyReportRepository) ByIDForUser(userID, reportID string) (*model.DailyReport, error) {
	report := &model.DailyReport{}
	query := `SELECT d.* FROM daily_reports d
	          JOIN goals g ON g.id = d.goal_id
	          WHERE d.id = $1 AND g.user_id = $2`

	err := r.db.Get(report, query, reportID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDailyReportNotFound
	}

	return report, err
}

func (r *dailyReportRepository) ByGoal(goalID string) ([]*model.DailyReport, error) {
	var reports []*model.DailyReport
	query := `SELECT * FROM daily_reports WHERE goal_id = $1 ORDER BY report_date ASC`

	err := r.db.Select(&reports, query, goalID)
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *dailyReportRepository) Update(report *model.DailyReport) error {
	query := `UPDATE daily_reports SET user_notes = $1 WHERE id = $2`

	result, err := r.db.Exec(query, report.UserNotes, report.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyReportNotFound
	}

	return nil
}

func (r *dailyReportRepository) Delete(userID, reportID string) error {
	query := `DELETE FROM daily_reports
	          WHERE id = $1 AND goal_id IN (SELECT id FROM goals WHERE user_id = $2)`

	result, err := r.db.Exec(query, reportID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyReportNotFound
	}

	return nil
}

type GoalReportRepository interface {
	Create(report *model.GoalReport) error
	ByGoal(goalID string) (*model.GoalReport, error)
	Update(report *model.GoalReport) error
}

type goalReportRepository struct {
	db *sqlx.DB
}

func NewGoalReportRepository(db *sqlx.DB) GoalReportRepository {
	return &goalReportRepository{db: db}
}

func (r *goalReportRepository) Create(report *model.GoalReport) error {
	query := `INSERT INTO goal_reports (id, goal_id, report_date, model_notes, user_notes, completion_rate, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		report.ID,
		report.GoalID,
		report.ReportDate,
		report.ModelNotes,
		report.UserNotes,
		report.CompletionRate,
		report.CreatedAt,
	)

	return err
}

func (r *goalReportRepository) ByGoal(goalID string) (*model.GoalReport, error) {
	report := &model.GoalReport{}
	query := `SELECT * FROM goal_reports WHERE goal_id = $1`

	err := r.db.Get(report, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalReportNotFound
	}

	return report, err
}

func (r *goalReportRepository) Update(report *model.GoalReport) error {
	query := `UPDATE goal_reports
	          SET report_date = $1, model_notes = $2, user_notes = $3, completion_rate = $4
	          WHERE goal_id = $5`

	result, err := r.db.Exec(query,
		report.ReportDate,
		report.ModelNotes,
		report.UserNotes,
		report.CompletionRate,
		report.GoalID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalReportNotFound
	}

	return nil
}
