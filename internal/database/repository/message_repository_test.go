package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
)

func TestMessageRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMessageRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")

	before := time.Now().UTC().Truncate(time.Millisecond)
	msg := &models.Message{SenderID: ann.ID, ReceiverID: bob.ID, Text: "Is it available?"}
	require.NoError(t, repo.Create(msg))

	assert.NotZero(t, msg.ID)
	assert.Nil(t, msg.ListingID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.False(t, msg.Timestamp.Before(before), "timestamp %v before %v", msg.Timestamp, before)
}

func TestMessageRepository_CreateRejectsUnknownListing(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMessageRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")

	missing := uint(4242)
	err := repo.Create(&models.Message{SenderID: ann.ID, ReceiverID: bob.ID, ListingID: &missing, Text: "hi"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMessageRepository_Conversation(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMessageRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")
	carl := createUser(t, db, "carl")

	send := func(from, to *models.User, text string) {
		require.NoError(t, repo.Create(&models.Message{SenderID: from.ID, ReceiverID: to.ID, Text: text}))
	}
	send(ann, bob, "1")
	send(bob, ann, "2")
	send(carl, ann, "not in thread")
	send(ann, carl, "also not in thread")
	send(ann, bob, "3")

	messages, err := repo.Conversation(ann.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	texts := []string{messages[0].Text, messages[1].Text, messages[2].Text}
	assert.Equal(t, []string{"1", "2", "3"}, texts)
	for i, m := range messages {
		pair := (m.SenderID == ann.ID && m.ReceiverID == bob.ID) ||
			(m.SenderID == bob.ID && m.ReceiverID == ann.ID)
		assert.True(t, pair)
		assert.NotEmpty(t, m.Sender.Name)
		if i > 0 {
			assert.False(t, m.Timestamp.Before(messages[i-1].Timestamp))
		}
	}

	// Symmetric from the other side
	reverse, err := repo.Conversation(bob.ID, ann.ID)
	require.NoError(t, err)
	assert.Len(t, reverse, 3)
}

func TestMessageRepository_Partners(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMessageRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")
	carl := createUser(t, db, "carl")
	createUser(t, db, "dana")

	require.NoError(t, repo.Create(&models.Message{SenderID: ann.ID, ReceiverID: bob.ID, Text: "a"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: ann.ID, Text: "b"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: carl.ID, ReceiverID: ann.ID, Text: "c"}))

	partners, err := repo.Partners(ann.ID)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "bob", partners[0].Name)
	assert.Equal(t, "carl@example.com", partners[1].Email)

	partners, err = repo.Partners(carl.ID)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, ann.ID, partners[0].ID)
}

func TestMessageRepository_Sent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMessageRepository(db)
	listings := repository.NewListingRepository(db)
	ann := createUser(t, db, "ann")
	bob := createUser(t, db, "bob")

	listing := &models.Listing{Title: "Bike", Price: 50, Category: "sports", SellerID: bob.ID}
	require.NoError(t, listings.Create(listing))

	require.NoError(t, repo.Create(&models.Message{SenderID: ann.ID, ReceiverID: bob.ID, ListingID: &listing.ID, Text: "first"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: ann.ID, ReceiverID: bob.ID, Text: "second"}))
	require.NoError(t, repo.Create(&models.Message{SenderID: bob.ID, ReceiverID: ann.ID, Text: "reply"}))

	sent, err := repo.Sent(ann.ID)
	require.NoError(t, err)
	require.Len(t, sent, 2)

	assert.Equal(t, "second", sent[0].Text)
	assert.Equal(t, "Unknown Listing", sent[0].ListingTitle("Unknown Listing"))
	assert.Equal(t, "first", sent[1].Text)
	assert.Equal(t, "Bike", sent[1].ListingTitle("Unknown Listing"))
	assert.Equal(t, "bob", sent[1].Receiver.Name)
}
