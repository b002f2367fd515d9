package testutil

// SampleProfileJSON is a stored device profile for tests
const SampleProfileJSON = `{"id":"user-1","name":"Alex","role":"customer"}`

// SampleSnapshotJSON is a persisted snapshot with one room, one active
// session, and two messages, in send order
const SampleSnapshotJSON = `{
  "chatrooms": {
    "chat-venue-1": {
      "id": "chat-venue-1",
      "venueId": "venue-1",
      "name": "Chat @ venue-1",
      "activeSessions": [
        {
          "id": "sess-1",
          "venueId": "venue-1",
          "userId": "user-1",
          "accessCode": "AB12CD",
          "joinedAt": "2026-08-01T12:00:00Z",
          "active": true,
          "displayName": "SpicyOlive7",
          "isAnonymous": true
        }
      ],
      "messages": [
        {
          "id": "msg-1",
          "sessionId": "sess-1",
          "venueId": "venue-1",
          "text": "anyone here?",
          "sentAt": "2026-08-01T12:01:00Z",
          "displayName": "SpicyOlive7",
          "isAnonymous": true
        },
        {
          "id": "msg-2",
          "sessionId": "sess-1",
          "venueId": "venue-1",
          "text": "the tacos are great",
          "sentAt": "2026-08-01T12:02:00Z",
          "displayName": "SpicyOlive7",
          "isAnonymous": true
        }
      ]
    }
  },
  "currentSession": {
    "id": "sess-1",
    "venueId": "venue-1",
    "userId": "user-1",
    "accessCode": "AB12CD",
    "joinedAt": "2026-08-01T12:00:00Z",
    "active": true,
    "displayName": "SpicyOlive7",
    "isAnonymous": true
  }
}`
