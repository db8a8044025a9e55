package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
)

const (
	createTask = `INSERT INTO tasks (user_id, title, category) VALUES (?, ?, ?);`

	listTasksByUser = `SELECT id, user_id, title, category, completed, created_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC;`

	getTaskByID = `SELECT id, user_id, title, category, completed, created_at
		FROM tasks
		WHERE id = ?;`

	deleteTask = `DELETE FROM tasks WHERE id = ?;`
)

type tasksRepo struct {
	db *sql.DB
}

func (r *tasksRepo) CreateTask(ctx context.Context, userID int64, title, category string) error {
	_, err := r.db.ExecContext(ctx, createTask, userID, title, category)
	return err
}

func (r *tasksRepo) ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, listTasksByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Category, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id int64) (domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRowContext(ctx, getTaskByID, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Category, &t.Completed, &t.CreatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id int64, changes domain.TaskChanges) error {
	assignments := updateAssignments(changes)
	if len(assignments) == 0 {
		// Callers reject empty updates before reaching the driver.
		return nil
	}

	query, args, err := squirrel.Update("tasks").
		SetMap(assignments).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteTask, id)
	return err
}

// updateAssignments maps the present fields of a partial update to column
// assignments. completed is coerced to the 0/1 integer representation the
// schema uses.
func updateAssignments(changes domain.TaskChanges) map[string]any {
	assignments := make(map[string]any, 3)

	if changes.Title != nil {
		assignments["title"] = *changes.Title
	}
	if changes.Category != nil {
		assignments["category"] = *changes.Category
	}
	if changes.Completed != nil {
		completed := 0
		if *changes.Completed {
			completed = 1
		}
		assignments["completed"] = completed
	}

	return assignments
}
