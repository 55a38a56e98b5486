// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec4

import "math"

// Constant table. Every value is built from a literal at package
// initialisation and never written afterwards, so it is safe to read from any
// goroutine.

// Scalar constants shared by the vector table and the scalar helpers.
const (
	epsilon32     float32 = 1.192092896e-7
	lge           float32 = 1.442695      // log2(e)
	invLge        float32 = 6.93147182e-1 // ln(2)
	unsignedFix   float32 = 2147483648.0  // 2^31
	intMaxFloat   float32 = 2147483520.0  // largest float below 2^31
	uintMaxFloat  float32 = 4294967040.0  // largest float below 2^32
	exponentBias          = 127
	numTrailing           = 23
	hyperbolicLog float32 = 1.442695040888963

	// π/2 as two 8-bit heads and a 24-bit tail. A head times a quotient
	// below 2^16 is exact in float32.
	halfPiHi  = 1.5703125
	halfPiMid = 4.84466552734375e-4
	halfPiLo  = -6.397578431460715e-7
)

// MaxAngle is the largest argument magnitude the trigonometric functions
// reduce. Lanes beyond it, infinities and NaN come back as NaN.
const MaxAngle float32 = 1e5

var (
	vZero   = Zero()
	vOne    = Replicate(1)
	vNegOne = Replicate(-1)
	vHalf   = Replicate(0.5)
	vTwo    = Replicate(2)

	vPi           = Replicate(math.Pi)
	vNegPi        = Replicate(-math.Pi)
	vTwoPi        = Replicate(2 * math.Pi)
	vHalfPi       = Replicate(math.Pi / 2)
	vQuarterPi    = Replicate(math.Pi / 4)
	vThreeQuarter = Replicate(3 * math.Pi / 4)
	vRecipTwoPi   = Replicate(1 / (2 * math.Pi))
	vTwoOverPi    = Replicate(2 / math.Pi)
	vMaxAngle     = Replicate(MaxAngle)

	vHalfPiHi  = Replicate(halfPiHi)
	vHalfPiMid = Replicate(halfPiMid)
	vHalfPiLo  = Replicate(halfPiLo)
	vPiHi      = Replicate(2 * halfPiHi)
	vPiMid     = Replicate(2 * halfPiMid)
	vPiLo      = Replicate(2 * halfPiLo)
	vTwoPiHi   = Replicate(4 * halfPiHi)
	vTwoPiMid  = Replicate(4 * halfPiMid)
	vTwoPiLo   = Replicate(4 * halfPiLo)

	vEpsilon     = Replicate(epsilon32)
	vUnsignedFix = Replicate(unsignedFix)
	vIntMax      = Replicate(intMaxFloat)
	vUIntMax     = Replicate(uintMaxFloat)

	vInfinity    = ReplicateUInt(0x7F800000)
	vNegInfinity = ReplicateUInt(0xFF800000)
	vQNaN        = ReplicateUInt(0x7FC00000)
	vNegQNaN     = ReplicateUInt(0xFFC00000)
	vSignMask    = ReplicateUInt(0x80000000)
	vAbsMask     = ReplicateUInt(0x7FFFFFFF)
	vExpMask     = ReplicateUInt(0x7F800000)
	vMantMask    = ReplicateUInt(0x007FFFFF)
	vMinNormal   = ReplicateUInt(0x00800000)
	vOneBits     = ReplicateUInt(0x3F800000)

	// Integer views used by the exponent arithmetic of exp and log.
	vExponentBias = ReplicateUInt(exponentBias)
	vSubnormalExp = ReplicateUInt(uint32(0xFFFFFF82)) // -126
	vNumTrailing  = ReplicateUInt(numTrailing)
	vBin128       = ReplicateUInt(0x43000000)
	vBinNeg150    = ReplicateUInt(0xC3160000)
	vBias253      = ReplicateUInt(253)
	vIntOne       = ReplicateUInt(1)

	vMaskTrue  = ReplicateUInt(0xFFFFFFFF)
	vMaskFalse = Zero()

	vUnitX    = Make(1, 0, 0, 0)
	vUnitY    = Make(0, 1, 0, 0)
	vUnitZ    = Make(0, 0, 1, 0)
	vUnitW    = Make(0, 0, 0, 1)
	vNegUnitX = Make(-1, 0, 0, 0)
	vNegUnitY = Make(0, -1, 0, 0)
	vNegUnitZ = Make(0, 0, -1, 0)
	vNegUnitW = Make(0, 0, 0, -1)
)

// Polynomial coefficients. Each is broadcast so it feeds MultiplyAdd
// directly.
var (
	// 2^-y on [0, 1), degree 7.
	expEst1 = Replicate(-6.93147182e-1)
	expEst2 = Replicate(+2.40226462e-1)
	expEst3 = Replicate(-5.55036440e-2)
	expEst4 = Replicate(+9.61597636e-3)
	expEst5 = Replicate(-1.32823968e-3)
	expEst6 = Replicate(+1.47491097e-4)
	expEst7 = Replicate(-1.08635004e-5)

	// log2(1+y) on [0, 1), degree 8.
	logEst0 = Replicate(+1.442693)
	logEst1 = Replicate(-0.721242)
	logEst2 = Replicate(+0.479384)
	logEst3 = Replicate(-0.350295)
	logEst4 = Replicate(+0.248590)
	logEst5 = Replicate(-0.145700)
	logEst6 = Replicate(+0.057148)
	logEst7 = Replicate(-0.010578)

	vLge    = Replicate(lge)
	vInvLge = Replicate(invLge)

	sin0 = [4]Vector{Replicate(-0.16666667), Replicate(+0.0083333310), Replicate(-0.00019840874), Replicate(+2.7525562e-06)}
	sin1 = [4]Vector{Replicate(-2.3889859e-08), Replicate(-0.16665852), Replicate(+0.0083139502), Replicate(-0.00018524670)}
	cos0 = [4]Vector{Replicate(-0.5), Replicate(+0.041666638), Replicate(-0.0013888378), Replicate(+2.4760495e-05)}
	cos1 = [4]Vector{Replicate(-2.6051615e-07), Replicate(-0.49992746), Replicate(+0.041493919), Replicate(-0.0012712436)}

	tan0   = [4]Vector{Replicate(1), Replicate(-4.667168334e-1), Replicate(2.566383229e-2), Replicate(-3.118153191e-4)}
	tan1   = [4]Vector{Replicate(4.981943399e-7), Replicate(-1.333835001e-1), Replicate(3.424887824e-3), Replicate(-1.786170734e-5)}
	tanEst = [4]Vector{Replicate(2.484), Replicate(-1.954923183e-1), Replicate(2.467401101), Replicate(1 / math.Pi)}

	arc0   = [4]Vector{Replicate(+1.5707963050), Replicate(-0.2145988016), Replicate(+0.0889789874), Replicate(-0.0501743046)}
	arc1   = [4]Vector{Replicate(+0.0308918810), Replicate(-0.0170881256), Replicate(+0.0066700901), Replicate(-0.0012624911)}
	arcEst = [4]Vector{Replicate(+1.5707288), Replicate(-0.2121144), Replicate(+0.0742610), Replicate(-0.0187293)}

	atan0    = [4]Vector{Replicate(-0.3333314528), Replicate(+0.1999355085), Replicate(-0.1420889944), Replicate(+0.1065626393)}
	atan1    = [4]Vector{Replicate(-0.0752896400), Replicate(+0.0429096138), Replicate(-0.0161657367), Replicate(+0.0028662257)}
	atanEst0 = Replicate(0.999866)
	atanEst1 = [4]Vector{Replicate(-0.3302995), Replicate(+0.180141), Replicate(-0.085133), Replicate(+0.0208351)}

	// Below this reduced angle tan(x) is x.
	vTanNearZero = Replicate(0.000244140625)

	vHyperbolicLog   = Replicate(hyperbolicLog)
	vHyperbolicLog2x = Replicate(2.8853900817779268)
)

// One returns (1, 1, 1, 1).
func One() Vector { return vOne }

// NegativeOne returns (-1, -1, -1, -1).
func NegativeOne() Vector { return vNegOne }

// Infinity returns +Inf in every lane.
func Infinity() Vector { return vInfinity }

// NaN returns a quiet NaN in every lane.
func NaN() Vector { return vQNaN }

// Epsilon returns the float32 machine epsilon in every lane.
func Epsilon() Vector { return vEpsilon }

// SignMask returns 0x80000000 in every lane.
func SignMask() Vector { return vSignMask }

func Pi() Vector     { return vPi }
func TwoPi() Vector  { return vTwoPi }
func HalfPi() Vector { return vHalfPi }

func UnitX() Vector { return vUnitX }
func UnitY() Vector { return vUnitY }
func UnitZ() Vector { return vUnitZ }
func UnitW() Vector { return vUnitW }

func NegativeUnitX() Vector { return vNegUnitX }
func NegativeUnitY() Vector { return vNegUnitY }
func NegativeUnitZ() Vector { return vNegUnitZ }
func NegativeUnitW() Vector { return vNegUnitW }

// MaskTrue returns a mask with every bit set.
func MaskTrue() Vector { return vMaskTrue }

// MaskFalse returns a mask with every bit clear.
func MaskFalse() Vector { return vMaskFalse }
