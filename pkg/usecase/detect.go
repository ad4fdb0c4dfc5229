package usecase

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/oracle"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/attack"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/diffmap"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/pci"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/join"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type detection struct {
	findings []model.Finding
	proof    *model.AttackProof
	failed   []types.FindingSource
}

// detect runs every detector to completion. A failing detector contributes no findings and never
// affects the others.
func (x *UseCase) detect(ctx context.Context, diff string) *detection {
	var (
		oracleResult join.Result[[]model.Finding]
		pciResult    join.Result[[]model.Finding]
		attackResult join.Result[attack.Outcome]
	)

	tasks := []join.Task{
		join.Bind(&pciResult, func(ctx context.Context) ([]model.Finding, error) {
			return pci.Audit(diff), nil
		}),
		join.Bind(&attackResult, func(ctx context.Context) (attack.Outcome, error) {
			return attack.Simulate(diff), nil
		}),
	}
	if x.clients.BugOracle() != nil {
		tasks = append(tasks, join.Bind(&oracleResult, func(ctx context.Context) ([]model.Finding, error) {
			return x.findBugs(ctx, diff)
		}))
	}

	join.All(ctx, tasks...)

	resp := &detection{}
	collect := func(source types.FindingSource, findings []model.Finding, err error) {
		if err != nil {
			resp.failed = append(resp.failed, source)
			x.clients.Metrics().DetectorFailure(source)
			logging.From(ctx).Warn("Detector failed", "detector", source, "error", err)
			return
		}
		resp.findings = append(resp.findings, findings...)
	}

	collect(types.FindingSourceOracle, oracleResult.Value, oracleResult.Err)
	collect(types.FindingSourcePCI, pciResult.Value, pciResult.Err)

	var attackFindings []model.Finding
	if attackResult.OK() {
		out := attackResult.Value
		logging.From(ctx).Debug("Attack simulation done", "outcome", out.Kind)
		if f, ok := out.Finding(); ok {
			if line, found := diffmap.Parse(diff).Locate(out.Fragment); found {
				f.File = line.File
				f.Line = line.Number
			}
			attackFindings = append(attackFindings, f)
			resp.proof = out.Proof
		}
	}
	collect(types.FindingSourceAttack, attackFindings, attackResult.Err)

	return resp
}

// findBugs calls the bug oracle with a truncated diff. The call is abandoned when the timeout expires,
// even if the oracle ignores cancellation.
func (x *UseCase) findBugs(ctx context.Context, diff string) ([]model.Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, x.oracleTimeout)
	defer cancel()

	type reply struct {
		findings []model.Finding
		err      error
	}
	ch := make(chan reply, 1)
	input := oracle.Truncate(diff, x.oracleInputLimit)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				ch <- reply{err: goerr.New("bug oracle panicked", goerr.V("panic", rec))}
			}
		}()
		findings, err := x.clients.BugOracle().FindBugs(ctx, input)
		ch <- reply{findings: findings, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, goerr.Wrap(r.err, "bug oracle failed")
		}
		return r.findings, nil

	case <-ctx.Done():
		return nil, goerr.Wrap(types.ErrDetectorFailure, "bug oracle timed out",
			goerr.V("timeout", x.oracleTimeout),
		)
	}
}
