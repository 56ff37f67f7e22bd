package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/linkedin/goavro/v2"

	"github.com/weiihann/avrobench/harness"
	"github.com/weiihann/avrobench/workload"
)

// Table measures object-container-file batch writes and full read
// passes for each configured row count, reporting rows/s.
func Table(cfg Config, w io.Writer, res *harness.Results) error {
	codec, err := goavro.NewCodec(workload.TableSchema)
	if err != nil {
		return fmt.Errorf("parse table schema: %w", err)
	}

	fmt.Fprintln(w, "--- Table Write/Read (Object Container File) ---")

	for _, n := range cfg.TableRows {
		rows := workload.TableRows(n)
		path := filepath.Join(cfg.TempDir, fmt.Sprintf("table_%d.avro", n))

		writeOp := func() error {
			return writeContainerFile(
				path, codec, goavro.CompressionNullLabel, rows,
			)
		}

		elapsed, err := harness.Time(
			writeOp, harness.DefaultWarmup, cfg.Repeats,
		)
		if err != nil {
			removeQuiet(path)

			return fmt.Errorf("write table (%d rows): %w", n, err)
		}

		avgWrite := elapsed / time.Duration(cfg.Repeats)
		writeRate := harness.Rate(n*cfg.Repeats, elapsed)
		fmt.Fprintf(w, "  Table Write (%d rows): %.2fms (%.0f rows/s)\n",
			n, millis(avgWrite), writeRate)
		res.Add(fmt.Sprintf("table_write_%d", n), writeRate, harness.UnitRate)

		// Materialize the file once more, untimed, so the read passes
		// see a complete file regardless of the timed loop's outcome.
		if err := writeOp(); err != nil {
			removeQuiet(path)

			return fmt.Errorf("write table (%d rows): %w", n, err)
		}

		readOp := func() error {
			count, err := countContainerFile(path)
			if err != nil {
				return err
			}
			if count != n {
				return fmt.Errorf("read %d rows, want %d", count, n)
			}

			return nil
		}

		elapsed, err = harness.Time(
			readOp, harness.DefaultWarmup, cfg.Repeats,
		)
		if err != nil {
			removeQuiet(path)

			return fmt.Errorf("read table (%d rows): %w", n, err)
		}

		avgRead := elapsed / time.Duration(cfg.Repeats)
		readRate := harness.Rate(n*cfg.Repeats, elapsed)
		fmt.Fprintf(w, "  Table Read  (%d rows): %.2fms (%.0f rows/s)\n",
			n, millis(avgRead), readRate)
		res.Add(fmt.Sprintf("table_read_%d", n), readRate, harness.UnitRate)

		removeQuiet(path)
	}

	return nil
}

// Compression writes the same fixed row set under each configured
// codec, reporting average write time and resulting file size. Reads
// are not measured here; the scenario isolates the time/space cost of
// block compression on the write path.
func Compression(cfg Config, w io.Writer, res *harness.Results) error {
	codec, err := goavro.NewCodec(workload.TableSchema)
	if err != nil {
		return fmt.Errorf("parse table schema: %w", err)
	}

	rows := workload.TableRows(cfg.CompressRows)

	fmt.Fprintf(w, "--- Table Write with Compression (%d rows) ---\n",
		cfg.CompressRows)

	for _, compression := range cfg.Codecs {
		path := filepath.Join(
			cfg.TempDir, "compress_"+compression+".avro",
		)

		writeOp := func() error {
			return writeContainerFile(path, codec, compression, rows)
		}

		elapsed, err := harness.Time(
			writeOp, harness.DefaultWarmup, cfg.Repeats,
		)
		if err != nil {
			removeQuiet(path)

			return fmt.Errorf("write with codec %s: %w", compression, err)
		}

		avg := elapsed / time.Duration(cfg.Repeats)

		// One untimed write, then measure the on-disk size.
		if err := writeOp(); err != nil {
			removeQuiet(path)

			return fmt.Errorf("write with codec %s: %w", compression, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			removeQuiet(path)

			return fmt.Errorf("stat %s: %w", path, err)
		}

		fmt.Fprintf(w, "  Codec=%s: %.2fms, file=%.1fKB\n",
			compression, millis(avg), float64(info.Size())/1024)
		res.Add("compress_write_ms_"+compression,
			millis(avg), harness.UnitMillis)
		res.Add("compress_size_bytes_"+compression,
			float64(info.Size()), harness.UnitBytes)

		removeQuiet(path)
	}

	return nil
}

func writeContainerFile(
	path string,
	codec *goavro.Codec,
	compression string,
	rows []map[string]interface{},
) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	ocfw, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               f,
		Codec:           codec,
		CompressionName: compression,
	})
	if err != nil {
		f.Close()

		return fmt.Errorf("open container writer: %w", err)
	}

	if len(rows) > 0 {
		if err := ocfw.Append(rows); err != nil {
			f.Close()

			return fmt.Errorf("append rows: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func countContainerFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ocfr, err := goavro.NewOCFReader(f)
	if err != nil {
		return 0, fmt.Errorf("open container reader: %w", err)
	}

	count := 0
	for ocfr.Scan() {
		if _, err := ocfr.Read(); err != nil {
			return count, fmt.Errorf("read row %d: %w", count, err)
		}
		count++
	}

	if err := ocfr.Err(); err != nil {
		return count, fmt.Errorf("scan container file: %w", err)
	}

	return count, nil
}

// removeQuiet deletes a scenario's temporary file. Deletion failure has
// no bearing on already-collected measurements, so it is swallowed.
func removeQuiet(path string) {
	_ = os.Remove(path)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
