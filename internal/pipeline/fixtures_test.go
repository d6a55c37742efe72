package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"price-impact-report/internal/domain"
)

const fixtureRun = domain.RunID("20250601_120000")

// fixtureLogs is a minimal run: two book timestamps, three trades over two
// seconds, two stats rows and one complete strategy interval.
var fixtureLogs = map[domain.LogKind][]string{
	domain.LogKindBook: {
		"\ufeffts,bidPrice,bidQty,askPrice,askQty",
		"2025-06-01T12:00:00.0000000Z,19.99,300,,",
		"2025-06-01T12:00:00.0000000Z,,,20.01,100",
		"--- simulator restarted ---",
		"2025-06-01T12:00:01.0000000Z,19.98,200,20.02,200",
	},
	domain.LogKindTrades: {
		"\ufeffts,side,price,qty",
		"2025-06-01T12:00:00.2000000Z,Buy,20.01,50",
		"2025-06-01T12:00:00.7000000Z,Sell,19.99,20",
		"2025-06-01T12:00:01.4000000Z,Buy,20.02,30",
	},
	domain.LogKindStats: {
		"\ufeffts,buyPower,position,vwap,pnl",
		"2025-06-01T12:00:00.5000000Z,1000.50,50,20.01,0",
		"2025-06-01T12:00:01.5000000Z,1600.60,80,20.0138,0.25",
	},
	domain.LogKindStrategyEvents: {
		"\ufeffts,strategy,event",
		"2025-06-01T12:00:00.1000000Z,LadderLiftStrategy,1",
		"2025-06-01T12:00:01.2000000Z,LadderLiftStrategy,0",
	},
}

// writeRun writes every log of run into dir, with optional overrides per kind.
func writeRun(t *testing.T, dir string, run domain.RunID, overrides map[domain.LogKind][]string) {
	t.Helper()
	for _, kind := range domain.LogKinds {
		lines, ok := overrides[kind]
		if !ok {
			lines = fixtureLogs[kind]
		}
		if lines == nil {
			continue
		}
		path := filepath.Join(dir, kind.FileName(run))
		require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\r\n")+"\r\n"), 0o644))
	}
}
