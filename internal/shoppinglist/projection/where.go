package projection

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"shopping-list/internal/model"
)

// itemEnv is the variable set visible to where expressions.
type itemEnv struct {
	ID        string    `expr:"id"`
	Name      string    `expr:"name"`
	Quantity  int       `expr:"quantity"`
	Purchased bool      `expr:"purchased"`
	CreatedAt time.Time `expr:"createdAt"`
}

func newItemEnv(it model.ShoppingItem) itemEnv {
	return itemEnv{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Purchased: it.Purchased,
		CreatedAt: it.CreatedAt,
	}
}

// Predicate is a compiled boolean expression over a single item,
// e.g. `quantity >= 3 && !purchased`.
type Predicate struct {
	source  string
	program *vm.Program
}

func (p *Predicate) String() string { return p.source }

// Match evaluates the predicate for one item.
func (p *Predicate) Match(it model.ShoppingItem) (bool, error) {
	out, err := expr.Run(p.program, newItemEnv(it))
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Filter keeps the items the predicate matches. Evaluation errors count as no match.
func (p *Predicate) Filter(items []model.ShoppingItem) []model.ShoppingItem {
	out := make([]model.ShoppingItem, 0, len(items))
	for _, it := range items {
		if ok, err := p.Match(it); err == nil && ok {
			out = append(out, it)
		}
	}
	return out
}

// Compiler compiles where expressions and keeps recently used programs.
type Compiler struct {
	cache *lru.Cache[string, *vm.Program]
}

// NewCompiler returns a Compiler caching up to size programs.
func NewCompiler(size int) (*Compiler, error) {
	cache, err := lru.New[string, *vm.Program](size)
	if err != nil {
		return nil, fmt.Errorf("projection: program cache: %w", err)
	}
	return &Compiler{cache: cache}, nil
}

// Compile type-checks src against the item fields. A blank src returns nil, nil.
func (c *Compiler) Compile(src string) (*Predicate, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	if program, ok := c.cache.Get(src); ok {
		return &Predicate{source: src, program: program}, nil
	}

	program, err := expr.Compile(src, expr.Env(itemEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	c.cache.Add(src, program)
	return &Predicate{source: src, program: program}, nil
}

// Len reports how many programs are cached.
func (c *Compiler) Len() int { return c.cache.Len() }
