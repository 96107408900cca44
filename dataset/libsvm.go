// Package dataset はラベル付き特徴行列のファイル読み込みを提供します。
package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// LoadLibSVM はLIBSVM形式のファイルを読み込み、密な特徴行列Xとラベルベクトルyを返す
//
// LIBSVM形式の各行は「<label> <index>:<value> ...」で、indexは1始まり。
// 欠けているindexの要素は0として密行列に展開される。
func LoadLibSVM(path string) (*mat.Dense, *mat.VecDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dataset: failed to open %s", path)
	}
	defer f.Close()

	return ReadLibSVM(f)
}

// ReadLibSVM はLIBSVM形式のデータをReaderから読み込む
func ReadLibSVM(r io.Reader) (*mat.Dense, *mat.VecDense, error) {
	type row struct {
		label    float64
		indices  []int
		values   []float64
	}

	var rows []row
	maxIndex := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		label, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "dataset: invalid label at line %d", lineNo)
		}

		rw := row{label: label}
		for _, f := range fields[1:] {
			// "index:value" のペア。コメント開始以降は無視する
			if strings.HasPrefix(f, "#") {
				break
			}
			sep := strings.IndexByte(f, ':')
			if sep < 0 {
				return nil, nil, errors.Newf("dataset: malformed feature %q at line %d", f, lineNo)
			}
			idx, err := strconv.Atoi(f[:sep])
			if err != nil || idx < 1 {
				return nil, nil, errors.Newf("dataset: invalid feature index %q at line %d", f[:sep], lineNo)
			}
			val, err := strconv.ParseFloat(f[sep+1:], 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "dataset: invalid feature value at line %d", lineNo)
			}
			if idx > maxIndex {
				maxIndex = idx
			}
			rw.indices = append(rw.indices, idx)
			rw.values = append(rw.values, val)
		}
		rows = append(rows, rw)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "dataset: read failed")
	}

	if len(rows) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "dataset: no rows")
	}

	X := mat.NewDense(len(rows), maxIndex, nil)
	y := mat.NewVecDense(len(rows), nil)
	for i, rw := range rows {
		y.SetVec(i, rw.label)
		for k, idx := range rw.indices {
			X.Set(i, idx-1, rw.values[k])
		}
	}

	return X, y, nil
}
