// Package input reads the device table and the optional side files that
// restrict a run to a subset of devices or program units.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vacgen/vacgen/internal/device"
)

// Column headers of the device table.
const (
	ColName   = "Device Name"
	ColTag    = "PLC Tag"
	ColGauge1 = "PLC dep gauge1"
	ColGauge2 = "PLC dep gauge2"
	ColPump1  = "PLC dep pump1"
	ColValve1 = "PLC dep valve1"
	ColVolume = "Volume"
	ColVol1   = "sim dep vol1"
	ColVol2   = "sim dep vol2"
	ColUnit   = "Program Unit"
)

var requiredColumns = []string{
	ColName, ColTag, ColGauge1, ColGauge2, ColPump1, ColValve1, ColVolume, ColVol1, ColVol2,
}

var ErrMissingColumn = errors.New("missing column")

// Row is one data row of the device table, 1-based after the header.
type Row struct {
	Line int
	Spec device.Spec
}

// ReadDevices parses the device table. Columns are matched by header name
// in any order; the program unit column is optional and defaults to the
// volume.
func ReadDevices(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty device table")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var rows []Row
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		spec := device.Spec{
			Name:   get(ColName),
			Tag:    strings.ToUpper(get(ColTag)),
			Gauge1: get(ColGauge1),
			Gauge2: get(ColGauge2),
			Pump1:  get(ColPump1),
			Valve1: get(ColValve1),
			Volume: get(ColVolume),
			Vol1:   get(ColVol1),
			Vol2:   get(ColVol2),
			Unit:   get(ColUnit),
		}
		if spec.Unit == "" {
			spec.Unit = spec.Volume
		}
		rows = append(rows, Row{Line: line, Spec: spec})
	}
	return rows, nil
}

// ReadDevicesFile opens and parses a device table.
func ReadDevicesFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open device table: %w", err)
	}
	defer f.Close()
	return ReadDevices(f)
}

// ReadNameList reads the first column of every non-empty record.
func ReadNameList(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var names []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			continue
		}
		if n := strings.TrimSpace(rec[0]); n != "" {
			names = append(names, n)
		}
	}
}

// ReadNameListFile reads a side file. An empty path yields no names.
func ReadNameListFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name list: %w", err)
	}
	defer f.Close()
	names, err := ReadNameList(f)
	if err != nil {
		return nil, fmt.Errorf("read name list %s: %w", path, err)
	}
	return names, nil
}
