package activation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/born-ml/activ/internal/tensor"
)

// ErrUnknownActivation is returned when a name or Kind does not map to an activation.
var ErrUnknownActivation = errors.New("unknown activation")

// Kind identifies one member of the closed activation family.
type Kind int

// Supported activations.
const (
	KindIdentity Kind = iota
	KindSigmoid
	KindReLU
	KindLeakyReLU
	KindELU
	KindTanh
	KindTanhP1M2
	KindSoftmax
)

var kindNames = [...]string{
	KindIdentity:  "identity",
	KindSigmoid:   "sigmoid",
	KindReLU:      "relu",
	KindLeakyReLU: "leaky_relu",
	KindELU:       "elu",
	KindTanh:      "tanh",
	KindTanhP1M2:  "tanh_p1m2",
	KindSoftmax:   "softmax",
}

var kindAliases = map[string]Kind{
	"linear":           KindIdentity,
	"rectified_linear": KindReLU,
	"lrelu":            KindLeakyReLU,
	"tan_h":            KindTanh,
	"rescaled_tanh":    KindTanhP1M2,
}

// String returns the canonical name of the activation.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a member of the family.
func (k Kind) Valid() bool {
	return k >= KindIdentity && int(k) < len(kindNames)
}

// Kinds returns every activation in declaration order.
func Kinds() []Kind {
	return lo.Times(len(kindNames), func(i int) Kind { return Kind(i) })
}

// Names returns the canonical names in declaration order.
func Names() []string {
	return lo.Map(Kinds(), func(k Kind, _ int) string { return k.String() })
}

// ParseKind resolves a canonical name or alias. Matching ignores case and
// treats '-' like '_'.
func ParseKind(name string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if idx := lo.IndexOf(kindNames[:], key); idx >= 0 {
		return Kind(idx), nil
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownActivation, name, strings.Join(Names(), ", "))
}

// New returns the activation for k evaluated in T.
func New[T tensor.Float](k Kind) (Function[T], error) {
	switch k {
	case KindIdentity:
		return Identity[T]{}, nil
	case KindSigmoid:
		return Sigmoid[T]{}, nil
	case KindReLU:
		return ReLU[T]{}, nil
	case KindLeakyReLU:
		return LeakyReLU[T]{}, nil
	case KindELU:
		return ELU[T]{}, nil
	case KindTanh:
		return Tanh[T]{}, nil
	case KindTanhP1M2:
		return TanhP1M2[T]{}, nil
	case KindSoftmax:
		return Softmax[T]{}, nil
	default:
		return nil, unknownKind(k)
	}
}

func unknownKind(k Kind) error {
	return fmt.Errorf("%w: %v", ErrUnknownActivation, k)
}

// MustNew is like New but panics on an unknown Kind.
func MustNew[T tensor.Float](k Kind) Function[T] {
	h, err := New[T](k)
	if err != nil {
		panic(err)
	}
	return h
}

// Info describes an activation for listings.
type Info struct {
	Kind   Kind
	Name   string
	OneHot bool
	Lo, Hi float64
}

// Catalog returns an Info for every activation in declaration order.
func Catalog() []Info {
	return lo.Map(Kinds(), func(k Kind, _ int) Info {
		h := MustNew[float64](k)
		low, high := h.Scale()
		return Info{Kind: k, Name: k.String(), OneHot: h.OneHot(), Lo: low, Hi: high}
	})
}
