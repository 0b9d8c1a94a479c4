package schlemiel

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.etcd.io/bbolt"
)

var KeyReport = []byte("reports")

// Trial is one timed pass over both variants, inefficient first.
type Trial struct {
	Inefficient TimeSpec
	Efficient   TimeSpec
}

// Report is a recorded run.
type Report struct {
	Name      string
	CreatedAt time.Time
	CPUModel  string
	Cores     int
	Trials    []Trial
}

// DescribeCPU fills CPUModel/Cores from the host. Failures leave the fields
// empty; the report is still usable.
func (r *Report) DescribeCPU() {
	infos, err := cpu.Info()
	if err == nil && len(infos) > 0 {
		r.CPUModel = infos[0].ModelName
	}
	cores, err := cpu.Counts(true)
	if err == nil {
		r.Cores = cores
	}
}

func (r *Report) Save(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(KeyReport)
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return b.Put([]byte(r.Name), data)
	})
}

// LoadReport returns nil without error when name isn't stored.
func LoadReport(db *bbolt.DB, name string) (*Report, error) {
	var r *Report
	err := db.View(func(tx *bbolt.Tx) error {
		bReports := tx.Bucket(KeyReport)
		if bReports == nil {
			return nil
		}
		b := bReports.Get([]byte(name))
		if b == nil {
			return nil
		}
		r = &Report{}
		return json.Unmarshal(b, r)
	})
	if err != nil {
		return nil, errors.Wrap(err, "db.View")
	}
	return r, nil
}

func ListReports(db *bbolt.DB) (reports []*Report, err error) {
	err = db.View(func(tx *bbolt.Tx) error {
		bReports := tx.Bucket(KeyReport)
		if bReports == nil {
			return nil
		}
		return bReports.ForEach(func(name, reportBytes []byte) error {
			r := &Report{}
			err := json.Unmarshal(reportBytes, r)
			if err != nil {
				return err
			}
			reports = append(reports, r)
			return nil
		})
	})
	return
}

// BenchFormat renders the trials as Go benchmark result lines so benchstat
// can consume stored reports.
func (r *Report) BenchFormat() string {
	var sb strings.Builder
	for _, t := range r.Trials {
		fmt.Fprintf(&sb, "BenchmarkInefficientConcat 1 %d ns/op\n", t.Inefficient.Nanos())
		fmt.Fprintf(&sb, "BenchmarkEfficientConcat 1 %d ns/op\n", t.Efficient.Nanos())
	}
	return sb.String()
}
