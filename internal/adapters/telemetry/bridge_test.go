package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/adapters/telemetry"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/rolegraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestProgressTracer_MirrorsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgress(ctrl)
	rolesPhase := mocks.NewMockPhaseRecorder(ctrl)
	rulesPhase := mocks.NewMockPhaseRecorder(ctrl)

	gomock.InOrder(
		progress.EXPECT().Phase(gomock.Any(), "roles").Return(rolesPhase),
		rolesPhase.EXPECT().Cached(),
		rolesPhase.EXPECT().Done(nil),
		progress.EXPECT().Phase(gomock.Any(), "rules").Return(rulesPhase),
		rulesPhase.EXPECT().Done(gomock.Any()).Do(func(err error) {
			require.EqualError(t, err, "rules unavailable")
		}),
		progress.EXPECT().Close().Return(nil),
	)

	tracer := telemetry.NewProgressTracer(progress)
	ctx := context.Background()

	_, roles := tracer.Start(ctx, "roles")
	roles.SetAttribute(ports.AttrCacheHit, true)
	roles.End()

	_, rules := tracer.Start(ctx, "rules")
	rules.RecordError(errors.New("rules unavailable"))
	rules.End()

	require.NoError(t, tracer.Shutdown(ctx))
}
