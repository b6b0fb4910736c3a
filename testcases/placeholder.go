package testcases

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const (
	RandIntToken           = "#RAND_INT"
	RandIntPlusThreadToken = "#RAND_INT_PLUS_THREAD"
)

// Source is the subset of *rand.Rand a placeholder needs to draw a value.
type Source interface {
	Intn(n int) int
}

// Placeholder is a value inside a document template that the runner replaces
// with a fresh value every time the operation is executed.
type Placeholder interface {
	Token() string
	Bounds() (lo, hi int)
	Draw(src Source, worker int) int32
}

// RandInt draws a uniform integer in [Min, Max).
type RandInt struct {
	Min, Max int
}

// RandIntPlusThread draws like RandInt and shifts the result by
// worker*(Max-Min), so concurrent workers operate on disjoint key ranges.
type RandIntPlusThread struct {
	Min, Max int
}

func (p RandInt) Token() string { return RandIntToken }

func (p RandInt) Bounds() (int, int) { return p.Min, p.Max }

func (p RandIntPlusThread) Token() string { return RandIntPlusThreadToken }

func (p RandIntPlusThread) Bounds() (int, int) { return p.Min, p.Max }

func (p RandInt) Draw(src Source, _ int) int32 {
	return int32(drawInRange(src, p.Min, p.Max))
}

func (p RandIntPlusThread) Draw(src Source, worker int) int32 {
	return int32(drawInRange(src, p.Min, p.Max) + worker*(p.Max-p.Min))
}

func (p RandInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalToken(p)
}

func (p RandIntPlusThread) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalToken(p)
}

func drawInRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo)
}

func marshalToken(p Placeholder) (bsontype.Type, []byte, error) {
	lo, hi := p.Bounds()
	return bson.MarshalValue(bson.D{{Key: p.Token(), Value: bson.A{int32(lo), int32(hi)}}})
}

// AsPlaceholder reports whether v is a placeholder, either one of the typed
// placeholders or a literal single-key token document such as
// {"#RAND_INT": [0, 10]}.
func AsPlaceholder(v interface{}) (Placeholder, bool) {
	switch t := v.(type) {
	case RandInt:
		return t, true
	case RandIntPlusThread:
		return t, true
	case bson.D:
		if len(t) != 1 {
			return nil, false
		}
		return tokenPlaceholder(t[0].Key, t[0].Value)
	case bson.M:
		if len(t) != 1 {
			return nil, false
		}
		for k, val := range t {
			return tokenPlaceholder(k, val)
		}
	}
	return nil, false
}

func tokenPlaceholder(token string, args interface{}) (Placeholder, bool) {
	if token != RandIntToken && token != RandIntPlusThreadToken {
		return nil, false
	}
	var bounds []interface{}
	switch a := args.(type) {
	case bson.A:
		bounds = a
	case []interface{}:
		bounds = a
	default:
		return nil, false
	}
	if len(bounds) != 2 {
		return nil, false
	}
	lo, ok := asInt(bounds[0])
	if !ok {
		return nil, false
	}
	hi, ok := asInt(bounds[1])
	if !ok {
		return nil, false
	}
	if token == RandIntToken {
		return RandInt{Min: lo, Max: hi}, true
	}
	return RandIntPlusThread{Min: lo, Max: hi}, true
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
