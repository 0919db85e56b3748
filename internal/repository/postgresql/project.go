package postgresql

import (
	"context"
	"fmt"

	"github.com/jakubK11/timereport/internal/domain/project"
	"github.com/jakubK11/timereport/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// All implements project.ProjectRepository.
func (p *projectRepositoryImpl) All(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name
		FROM project
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(&proj.ID, &proj.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return projects, nil
}
