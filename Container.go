package Go_Containers

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Container is the contract every structure in this module satisfies. It's
// the gods container interface, so the structures can be handed to code
// written against gods.
//
// None of the containers are safe for concurrent use. Guard them with a
// sync.RWMutex if they must be shared.
type Container interface {
	containers.Container
}

// Format renders values the way the String methods of this module do:
// "Name[v1 v2 ...]".
func Format(name string, values []interface{}) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
