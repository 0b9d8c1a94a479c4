package schlemiel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "db"), 0600, bbolt.DefaultOptions)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReportSaveLoad(t *testing.T) {
	db := openTestDB(t)

	r := &Report{
		Name:      "boring_panini",
		CreatedAt: time.Now().UTC(),
		CPUModel:  "test cpu",
		Cores:     4,
		Trials: []Trial{{
			Inefficient: TimeSpec{Sec: 1, Nsec: 500},
			Efficient:   TimeSpec{Sec: 0, Nsec: 250},
		}},
	}
	require.NoError(t, r.Save(db))

	got, err := LoadReport(db, "boring_panini")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, r.Name, got.Name)
	require.Equal(t, r.CPUModel, got.CPUModel)
	require.Equal(t, r.Trials, got.Trials)
}

func TestLoadReportMissing(t *testing.T) {
	db := openTestDB(t)

	got, err := LoadReport(db, "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListReports(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"a", "b"} {
		r := &Report{Name: name, CreatedAt: time.Now()}
		require.NoError(t, r.Save(db))
	}
	reports, err := ListReports(db)
	require.NoError(t, err)
	require.Len(t, reports, 2)
}

func TestBenchFormat(t *testing.T) {
	r := &Report{Trials: []Trial{{
		Inefficient: TimeSpec{Sec: 1, Nsec: 5},
		Efficient:   TimeSpec{Sec: 0, Nsec: 10},
	}}}
	want := "BenchmarkInefficientConcat 1 1000000005 ns/op\nBenchmarkEfficientConcat 1 10 ns/op\n"
	require.Equal(t, want, r.BenchFormat())
}
