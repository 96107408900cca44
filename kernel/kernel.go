// Package kernel はカーネル関数とその近似的な特徴写像を提供します。
//
// Kernelインターフェースを実装する任意のカーネル族（Gaussian、Linearなど）は
// nonlinearパッケージの各ソルバーでそのまま交換可能です。
package kernel

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Kernel はカーネル関数の抽象インターフェース
type Kernel interface {
	// Gram は訓練データX (m×n) に対するグラム行列 (m×m) を計算する
	Gram(X mat.Matrix) (*mat.Dense, error)

	// GramBetween はAの各行とBの各行の間のカーネル評価行列 (|A|×|B|) を計算する
	GramBetween(A, B mat.Matrix) (*mat.Dense, error)

	// RFT はnFeatures次元のランダム特徴変換を抽出する。
	// 抽出された変換は決定的であり、同じ変換を適用する限り同じ結果を返す。
	// ランダム特徴写像を持たないカーネルはエラーを返す。
	RFT(nFeatures int, rng *rand.Rand) (*RandomFourier, error)

	// String はカーネル名を返す
	String() string
}
