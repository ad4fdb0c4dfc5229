package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/goerr/v2"
)

const (
	sqlPutRepository = `INSERT INTO repositories (id, owner, name, name_key, installation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			name = EXCLUDED.name,
			name_key = EXCLUDED.name_key,
			installation_id = EXCLUDED.installation_id,
			updated_at = EXCLUDED.updated_at`

	sqlSelectRepository = `SELECT id, owner, name, installation_id, created_at, updated_at FROM repositories`

	sqlUpdateInstallationID = `UPDATE repositories SET installation_id = $2, updated_at = $3 WHERE id = $1`

	sqlInsertAnalysis = `INSERT INTO analyses (id, repository_id, repository_ref, pr_number, risk_score, status,
			issues_found, findings, attack_proof, estimated_fine, delivery_id, diff_archive, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	sqlSelectAnalysis = `SELECT id, repository_id, repository_ref, pr_number, risk_score, status,
			issues_found, findings, attack_proof, estimated_fine, delivery_id, diff_archive, created_at
		FROM analyses`
)

// Repository operations

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if repo.ID == "" || repo.Owner == "" || repo.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID, owner and name are required",
			goerr.V("repo", repo),
		)
	}

	_, err := r.pool.Exec(ctx, sqlPutRepository,
		repo.ID.String(),
		repo.Owner,
		repo.Name,
		model.RepositoryKey(repo.Owner, repo.Name),
		int64(repo.InstallationID),
		repo.CreatedAt,
		repo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository name is already registered",
				goerr.V("name", repo.FullName()),
			)
		}
		return goerr.Wrap(err, "failed to put repository",
			goerr.V("repoID", repo.ID),
		)
	}

	return nil
}

func (r *Repository) FindRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	row := r.pool.QueryRow(ctx, sqlSelectRepository+` WHERE name_key = $1`, model.RepositoryKey(owner, name))

	repo, err := scanRepository(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("owner", owner),
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	return repo, nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	rows, err := r.pool.Query(ctx, sqlSelectRepository+` ORDER BY name_key`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	defer rows.Close()

	var repos []*model.Repository
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository")
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate repositories")
	}

	return repos, nil
}

func (r *Repository) UpdateInstallationID(ctx context.Context, repoID types.RepositoryID, installID types.GitHubAppInstallID, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, sqlUpdateInstallationID, repoID.String(), int64(installID), updatedAt)
	if err != nil {
		return goerr.Wrap(err, "failed to update installation ID",
			goerr.V("repoID", repoID),
			goerr.V("installID", installID),
		)
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	return nil
}

func scanRepository(row pgx.Row) (*model.Repository, error) {
	var (
		id, owner, name      string
		installID            int64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &owner, &name, &installID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &model.Repository{
		ID:             types.RepositoryID(id),
		Owner:          owner,
		Name:           name,
		InstallationID: types.GitHubAppInstallID(installID),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// Analysis operations

func (r *Repository) CreateAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if analysis.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "analysis ID is required")
	}

	findings, proof, err := encodeAnalysis(analysis)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlInsertAnalysis,
		analysis.ID.String(),
		analysis.RepositoryID.String(),
		analysis.RepositoryRef,
		int64(analysis.PRNumber),
		int64(analysis.RiskScore),
		string(analysis.Status),
		int64(analysis.IssuesFound),
		findings,
		proof,
		analysis.EstimatedFine,
		analysis.DeliveryID.String(),
		analysis.DiffArchive,
		analysis.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "analysis already exists",
				goerr.V("analysisID", analysis.ID),
			)
		}
		return goerr.Wrap(err, "failed to create analysis",
			goerr.V("analysisID", analysis.ID),
		)
	}

	return nil
}

func (r *Repository) GetAnalysis(ctx context.Context, id types.AnalysisID) (*model.Analysis, error) {
	row := r.pool.QueryRow(ctx, sqlSelectAnalysis+` WHERE id = $1`, id.String())

	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "analysis not found",
				goerr.V("analysisID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get analysis",
			goerr.V("analysisID", id),
		)
	}

	return analysis, nil
}

// ListAnalyses returns the newest analyses first. A non-positive limit returns all of them.
func (r *Repository) ListAnalyses(ctx context.Context, repoID types.RepositoryID, limit int) ([]*model.Analysis, error) {
	var limitArg any
	if limit > 0 {
		limitArg = int64(limit)
	}

	rows, err := r.pool.Query(ctx, sqlSelectAnalysis+` WHERE repository_id = $1 ORDER BY created_at DESC LIMIT $2`,
		repoID.String(), limitArg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list analyses",
			goerr.V("repoID", repoID),
		)
	}
	defer rows.Close()

	var analyses []*model.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode analysis",
				goerr.V("repoID", repoID),
			)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate analyses",
			goerr.V("repoID", repoID),
		)
	}

	return analyses, nil
}

func encodeAnalysis(analysis *model.Analysis) ([]byte, []byte, error) {
	findings := analysis.Findings
	if findings == nil {
		findings = []model.Finding{}
	}
	rawFindings, err := json.Marshal(findings)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to encode findings",
			goerr.V("analysisID", analysis.ID),
		)
	}

	var rawProof []byte
	if analysis.AttackProof != nil {
		rawProof, err = json.Marshal(analysis.AttackProof)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to encode attack proof",
				goerr.V("analysisID", analysis.ID),
			)
		}
	}

	return rawFindings, rawProof, nil
}

func scanAnalysis(row pgx.Row) (*model.Analysis, error) {
	var (
		id, repoID, repoRef, status string
		deliveryID, diffArchive     string
		prNumber, riskScore, issues int64
		fine                        int64
		rawFindings, rawProof       []byte
		createdAt                   time.Time
	)
	if err := row.Scan(&id, &repoID, &repoRef, &prNumber, &riskScore, &status,
		&issues, &rawFindings, &rawProof, &fine, &deliveryID, &diffArchive, &createdAt); err != nil {
		return nil, err
	}

	analysis := &model.Analysis{
		ID:            types.AnalysisID(id),
		RepositoryID:  types.RepositoryID(repoID),
		RepositoryRef: repoRef,
		PRNumber:      int(prNumber),
		RiskScore:     int(riskScore),
		Status:        types.AnalysisStatus(status),
		IssuesFound:   int(issues),
		EstimatedFine: fine,
		DeliveryID:    types.DeliveryID(deliveryID),
		DiffArchive:   diffArchive,
		CreatedAt:     createdAt,
	}

	if err := json.Unmarshal(rawFindings, &analysis.Findings); err != nil {
		return nil, goerr.Wrap(err, "failed to decode findings", goerr.V("analysisID", id))
	}
	if len(rawProof) > 0 {
		var proof model.AttackProof
		if err := json.Unmarshal(rawProof, &proof); err != nil {
			return nil, goerr.Wrap(err, "failed to decode attack proof", goerr.V("analysisID", id))
		}
		analysis.AttackProof = &proof
	}

	return analysis, nil
}
