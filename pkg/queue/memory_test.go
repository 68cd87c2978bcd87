package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_order(t *testing.T) {
	q := NewInMemoryQueue[string](4)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, 3, q.Size())

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", item)

	assert.Equal(t, []string{"b", "c"}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueue[int](1)

	require.NoError(t, q.Enqueue(1))
	assert.Error(t, q.Enqueue(2))

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue(3))
}

func TestNewInMemoryQueue_defaultSize(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	assert.Equal(t, QueueBufferSize, cap(q.ch))
}
