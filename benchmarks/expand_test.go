package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/vars"
)

var (
	simpleSource  = "https://api.example.com/users/{id}"
	complexSource = "https://api.example.com{/path*}/items{?q,tags,page*}{#frag}"
	brokenSource  = "https://api.example.com/{x:0}/{,}/{y"
)

func benchVars() *vars.Set {
	return vars.New().
		SetString("id", "12345").
		SetList("path", "v1", "catalog", "search").
		SetString("q", "hello world").
		SetList("tags", "red", "green", "blue").
		SetAssoc("page", uritemplate.Pair{Key: "size", Value: "50"}, uritemplate.Pair{Key: "number", Value: "3"}).
		SetString("frag", "results/top")
}

// BenchmarkParse_Simple measures parsing a single-expression template.
func BenchmarkParse_Simple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		uritemplate.Parse(simpleSource)
	}
}

// BenchmarkParse_Complex measures parsing a template using several operators.
func BenchmarkParse_Complex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		uritemplate.Parse(complexSource)
	}
}

// BenchmarkParse_Degraded measures parsing malformed expressions.
func BenchmarkParse_Degraded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		uritemplate.Parse(brokenSource)
	}
}

// BenchmarkExpand_Simple measures expanding a pre-parsed simple template.
func BenchmarkExpand_Simple(b *testing.B) {
	t := uritemplate.Parse(simpleSource)
	v := benchVars()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Expand(v)
	}
}

// BenchmarkExpand_Complex measures expanding lists, associative arrays,
// and reserved characters.
func BenchmarkExpand_Complex(b *testing.B) {
	t := uritemplate.Parse(complexSource)
	v := benchVars()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Expand(v)
	}
}

// BenchmarkExpand_Map measures lookup through a plain map.
func BenchmarkExpand_Map(b *testing.B) {
	t := uritemplate.Parse(complexSource)
	v := uritemplate.Map{
		"q":    uritemplate.StringValue("hello world"),
		"tags": uritemplate.ListValue("red", "green", "blue"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Expand(v)
	}
}

// BenchmarkExpand_Parallel measures concurrent expansion of one template.
func BenchmarkExpand_Parallel(b *testing.B) {
	t := uritemplate.Parse(complexSource)
	v := benchVars()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			t.Expand(v)
		}
	})
}

// BenchmarkExpander_NoopObservability measures instrumentation overhead
// with logging, metrics, and tracing disabled.
func BenchmarkExpander_NoopObservability(b *testing.B) {
	exp := uritemplate.NewExpander()
	ctx := context.Background()
	t := exp.Parse(ctx, complexSource)
	v := benchVars()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		exp.Expand(ctx, t, v)
	}
}
