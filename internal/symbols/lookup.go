package symbols

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/strstore"
)

// Item names which kind of identifier an Undefined/Redefined error is
// about.
type Item int

const (
	ItemValue Item = iota
	ItemType
	ItemStructure
	ItemSignature
	ItemFunctor
)

// RedefinedError is env_ins's failure: key already present.
type RedefinedError struct {
	Name strstore.ID
}

func (e *RedefinedError) Error() string { return "redefined identifier" }

// UndefinedError is get_env/get_val_info's failure: no such binding.
type UndefinedError struct {
	Item Item
	Name strstore.ID
}

func (e *UndefinedError) Error() string { return "undefined identifier" }

// EnvIns inserts key/val into m, failing RedefinedError on collision.
// Generic over the three environment map shapes (ValEnv, TyEnv, StrEnv)
// since all three share this exact insert-or-fail discipline.
func EnvIns[V any](m map[strstore.ID]V, key strstore.ID, val V) error {
	if _, ok := m[key]; ok {
		return &RedefinedError{Name: key}
	}
	m[key] = val
	return nil
}

// EnvMerge calls EnvIns for every entry of rhs into lhs, stopping at the
// first collision.
func EnvMerge[V any](lhs, rhs map[strstore.ID]V) error {
	for k, v := range rhs {
		if err := EnvIns(lhs, k, v); err != nil {
			return err
		}
	}
	return nil
}

// GetEnv walks the leading structure path of a long identifier through
// StrEnv, returning the final Env, and failing Undefined(Structure) at
// the first missing segment.
func GetEnv(env Env, long ast.LongVId) (Env, error) {
	cur := env
	for _, seg := range long.StrIds {
		next, ok := cur.StrEnv[seg.Val]
		if !ok {
			return Env{}, &UndefinedError{Item: ItemStructure, Name: seg.Val}
		}
		cur = next
	}
	return cur, nil
}

// GetValInfo reads the leaf of a long identifier out of env's ValEnv,
// failing Undefined(Value) if absent. Callers should first resolve the
// structure path with GetEnv.
func GetValInfo(env Env, name strstore.ID) (ValInfo, error) {
	info, ok := env.ValEnv[name]
	if !ok {
		return ValInfo{}, &UndefinedError{Item: ItemValue, Name: name}
	}
	return info, nil
}
