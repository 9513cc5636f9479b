package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	ai "github.com/wayfinder-ai/wayfinder"
)

func TestMessageStore_Append(t *testing.T) {
	ms := NewMessageStore()

	assert.Equal(t, 0, ms.Len())

	ms.Append(ai.Message{Role: ai.RoleUser, Content: "Hello"})
	assert.Equal(t, 1, ms.Len())

	ms.Append(
		ai.Message{Role: ai.RoleAssistant, Content: "Hi there"},
		ai.Message{Role: ai.RoleUser, Content: "How are you?"},
	)
	assert.Equal(t, 3, ms.Len())
}

func TestMessageStore_Messages(t *testing.T) {
	ms := NewMessageStore()

	ms.Append(
		ai.Message{Role: ai.RoleUser, Content: "Hello"},
		ai.Message{Role: ai.RoleAssistant, Content: "Hi"},
	)

	messages := ms.Messages()
	assert.Len(t, messages, 2)
	assert.Equal(t, "Hello", messages[0].Content)
	assert.Equal(t, "Hi", messages[1].Content)

	// Verify it's a copy - modifying returned slice doesn't affect store
	messages[0].Content = "Modified"
	storeMessages := ms.Messages()
	assert.Equal(t, "Hello", storeMessages[0].Content)
}

func TestMessageStore_From(t *testing.T) {
	initial := []ai.Message{
		{Role: ai.RoleSystem, Content: "You are helpful"},
		{Role: ai.RoleUser, Content: "Hello"},
	}
	ms := NewMessageStoreFrom(initial)
	assert.Equal(t, 2, ms.Len())

	// Store is independent of the source slice
	initial[0].Content = "Modified"
	assert.Equal(t, "You are helpful", ms.Messages()[0].Content)
}

func TestMessageStore_Clear(t *testing.T) {
	ms := NewMessageStore()

	ms.Append(
		ai.Message{Role: ai.RoleUser, Content: "Hello"},
		ai.Message{Role: ai.RoleAssistant, Content: "Hi"},
	)

	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Empty(t, ms.Messages())
}

func TestMessageStore_Last(t *testing.T) {
	ms := NewMessageStoreFrom([]ai.Message{
		{Role: ai.RoleUser, Content: "one"},
		{Role: ai.RoleAssistant, Content: "two"},
		{Role: ai.RoleUser, Content: "three"},
	})

	assert.Nil(t, ms.Last(0))
	assert.Len(t, ms.Last(2), 2)
	assert.Equal(t, "two", ms.Last(2)[0].Content)
	assert.Len(t, ms.Last(10), 3)
}

func TestMessageStore_Concurrent(t *testing.T) {
	ms := NewMessageStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				ms.Append(ai.Message{Role: ai.RoleUser, Content: "msg"})
				_ = ms.Messages()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, ms.Len())
}
