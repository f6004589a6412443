package manager

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	output := `Server status:
[ ACTIVE ] "creative2" is running.
[ INACTIVE ] "anarchy" is stopped.
  [ ACTIVE ] "minerva" is running.  
garbage line
[ ACTIVE ] "broken" is sleeping.
`
	r := ParseStatus(output)

	assert.Equal(t, []string{"creative2", "anarchy", "minerva"}, r.Names())

	s, ok := r.Get("anarchy")
	assert.True(t, ok)
	assert.False(t, s.Online)

	s, ok = r.Get("minerva")
	assert.True(t, ok)
	assert.True(t, s.Online)

	_, ok = r.Get("broken")
	assert.False(t, ok)
}

func TestParseStatus_Empty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "No servers configured."} {
		r := ParseStatus(in)
		assert.Equal(t, 0, r.Len())
		_, ok := r.First()
		assert.False(t, ok)
		assert.Empty(t, r.Servers())
	}
}

func TestParseStatus_LongLine(t *testing.T) {
	output := strings.Repeat("x", 128*1024) + "\n[ ACTIVE ] \"after\" is running.\n"
	r := ParseStatus(output)
	assert.Equal(t, []string{"after"}, r.Names())
}

func TestParseStatus_DuplicateLastWins(t *testing.T) {
	output := `[ ACTIVE ] "a" is running.
[ ACTIVE ] "b" is running.
[ INACTIVE ] "a" is stopped.
`
	r := ParseStatus(output)
	assert.Equal(t, []string{"a", "b"}, r.Names())

	s, _ := r.Get("a")
	assert.False(t, s.Online)

	first, ok := r.First()
	assert.True(t, ok)
	assert.Equal(t, "a", first.Name)
}

func TestStatusRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		n := rng.Intn(20)
		servers := make([]Server, 0, n)
		for j := 0; j < n; j++ {
			servers = append(servers, Server{
				Name:   fmt.Sprintf("srv-%d_%d", i, j),
				Online: rng.Intn(2) == 0,
			})
		}
		rng.Shuffle(len(servers), func(a, b int) { servers[a], servers[b] = servers[b], servers[a] })

		got := ParseStatus(FormatStatus(servers))
		assert.ElementsMatch(t, servers, got.Servers())
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(Server{Name: "x", Online: true}, Server{Name: "y"})
	assert.Equal(t, 2, r.Len())

	// Returned slices are copies.
	names := r.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"x", "y"}, r.Names())
}
