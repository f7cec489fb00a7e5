package models

import "go.mongodb.org/mongo-driver/bson"

// Document is a loosely-typed store document. No schema is enforced by
// this service; payloads pass through to the store and back unmodified.
type Document = bson.M

// Collection names in the book-worm database.
const (
	UsersCollection     = "users"
	BooksCollection     = "books"
	GenresCollection    = "genres"
	TutorialsCollection = "tutorials"
	ShelvesCollection   = "shelves"
	ReviewsCollection   = "reviews"
)

// Review moderation statuses. Every submitted review is stored as
// pending; approval happens out-of-band and is never done by this
// service.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
)
