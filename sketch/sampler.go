// Package sketch は行サンプリングのプリミティブを提供します。
//
// NystromRLSのような低ランク近似は、訓練データの行部分集合の抽出に
// このパッケージのサンプラーを使用します。
package sketch

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gorls/pkg/errors"
)

// NonUniformSampler は与えられた確率分布に従って行を復元抽出するサンプラー
type NonUniformSampler struct {
	// Population は母集団の行数 m
	Population int

	// SampleSize は抽出する行数 s
	SampleSize int

	// cumWeights は正規化済み確率の累積和（二分探索用）
	cumWeights []float64

	rng *rand.Rand
}

// NewNonUniformSampler は新しいNonUniformSamplerを作成する
//
// パラメータ:
//   - population: 母集団の行数 m
//   - sampleSize: 抽出する行数 s
//   - weights: 各行の確率（m要素、合計は正規化される）
//   - rng: 乱数生成器
func NewNonUniformSampler(population, sampleSize int, weights []float64, rng *rand.Rand) (*NonUniformSampler, error) {
	if population <= 0 || sampleSize <= 0 {
		return nil, errors.NewValueError("NewNonUniformSampler", "population and sampleSize must be positive")
	}
	if len(weights) != population {
		return nil, errors.NewDimensionError("NewNonUniformSampler", population, len(weights), 0)
	}

	total := floats.Sum(weights)
	if err := errors.CheckScalar("NewNonUniformSampler", total); err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, errors.NewValueError("NewNonUniformSampler", "weights must sum to a positive value")
	}

	cum := make([]float64, population)
	acc := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, errors.NewValueError("NewNonUniformSampler", "weights must be non-negative")
		}
		acc += w / total
		cum[i] = acc
	}
	// 丸め誤差で最後の要素が1を下回らないようにする
	cum[population-1] = 1.0

	return &NonUniformSampler{
		Population: population,
		SampleSize: sampleSize,
		cumWeights: cum,
		rng:        rng,
	}, nil
}

// NewUniformSampler は一様分布（各行 1/m）で復元抽出するサンプラーを作成する
func NewUniformSampler(population, sampleSize int, rng *rand.Rand) (*NonUniformSampler, error) {
	weights := make([]float64, population)
	for i := range weights {
		weights[i] = 1.0 / float64(population)
	}
	return NewNonUniformSampler(population, sampleSize, weights, rng)
}

// SampleIndices は分布に従って行インデックスをSampleSize個復元抽出する
func (s *NonUniformSampler) SampleIndices() []int {
	idx := make([]int, s.SampleSize)
	for i := range idx {
		u := s.rng.Float64()
		idx[i] = sort.SearchFloat64s(s.cumWeights, u)
	}
	return idx
}

// SampleRows はXから行を復元抽出し、部分行列と抽出した行インデックスを返す
func (s *NonUniformSampler) SampleRows(X mat.Matrix) (*mat.Dense, []int, error) {
	m, n := X.Dims()
	if m != s.Population {
		return nil, nil, errors.NewDimensionError("NonUniformSampler.SampleRows", s.Population, m, 0)
	}

	idx := s.SampleIndices()
	SX := mat.NewDense(s.SampleSize, n, nil)
	for i, row := range idx {
		for j := 0; j < n; j++ {
			SX.Set(i, j, X.At(row, j))
		}
	}
	return SX, idx, nil
}
