package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DATCH7/real-estate/models"
)

const (
	usersTable      = "users"
	propertiesTable = "properties"
	favoritesTable  = "favorites"
	messagesTable   = "messages"
	sessionsTable   = "sessions"
)

var (
	userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "phone", "role", "created_at"}

	propertyColumns = []string{
		"id", "title", "description", "price", "surface", "rooms", "type", "category",
		"address", "photos", "diagnostics", "equipment", "published_at", "agent_id", "is_featured",
	}

	messageColumns = []string{"id", "sender_id", "receiver_id", "property_id", "content", "sent_at"}

	sessionColumns = []string{"id", "user_id", "email", "first_name", "last_name", "phone", "role", "created_at", "expires_at"}
)

// prefixed qualifies every column with the given table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// users

func (db *DB) buildInsertUserQuery(u models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Phone, string(u.Role), u.CreatedAt.UTC()).
		ToSql()
}

func (db *DB) buildSelectUserQuery(column, value string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (db *DB) buildListUsersQuery() (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
}

func (db *DB) buildUpdateRoleQuery(userID string, role models.Role) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("role", string(role)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (db *DB) buildDeleteUserQuery(userID string) (string, []any, error) {
	return db.builder.
		Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (db *DB) buildSelectAgentPhotosQuery(agentID string) (string, []any, error) {
	return db.builder.
		Select("photos").
		From(propertiesTable).
		Where(sq.Eq{"agent_id": agentID}).
		ToSql()
}

// properties

func (db *DB) buildInsertPropertyQuery(p models.Property) (string, []any, error) {
	return db.builder.
		Insert(propertiesTable).
		Columns(propertyColumns...).
		Values(
			p.ID, p.Title, p.Description, p.Price, p.Surface, p.Rooms, p.Type, string(p.Category),
			p.Address, stringList(p.Photos), p.Diagnostics, stringList(p.Equipment), p.PublishedAt.UTC(), p.AgentID, p.IsFeatured,
		).
		ToSql()
}

func (db *DB) selectProperties() sq.SelectBuilder {
	return db.builder.
		Select(propertyColumns...).
		From(propertiesTable)
}

func (db *DB) buildGetPropertyQuery(propertyID string) (string, []any, error) {
	return db.selectProperties().
		Where(sq.Eq{"id": propertyID}).
		ToSql()
}

func (db *DB) buildListPropertiesQuery(category *models.Category) (string, []any, error) {
	q := db.selectProperties()
	if category != nil {
		q = q.Where(sq.Eq{"category": string(*category)})
	}

	return q.OrderBy("published_at", "id").ToSql()
}

// favorites

func (db *DB) buildInsertFavoriteQuery(f models.Favorite) (string, []any, error) {
	return db.builder.
		Insert(favoritesTable).
		Columns("id", "user_id", "property_id", "added_at").
		Values(f.ID, f.UserID, f.PropertyID, f.AddedAt.UTC()).
		ToSql()
}

func (db *DB) buildDeleteFavoriteQuery(userID, propertyID string) (string, []any, error) {
	return db.builder.
		Delete(favoritesTable).
		Where(sq.Eq{"user_id": userID, "property_id": propertyID}).
		ToSql()
}

func (db *DB) buildListFavoritesQuery(userID string) (string, []any, error) {
	columns := append([]string{"f.id", "f.user_id", "f.property_id", "f.added_at"}, prefixed("p", propertyColumns)...)

	return db.builder.
		Select(columns...).
		From(favoritesTable + " f").
		Join(propertiesTable + " p ON p.id = f.property_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.added_at", "f.id").
		ToSql()
}

// messages

func (db *DB) buildInsertMessageQuery(m models.Message) (string, []any, error) {
	return db.builder.
		Insert(messagesTable).
		Columns(messageColumns...).
		Values(m.ID, m.SenderID, m.ReceiverID, m.PropertyID, m.Content, m.SentAt.UTC()).
		ToSql()
}

func (db *DB) buildListMessagesQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(messageColumns...).
		From(messagesTable).
		Where(sq.Or{sq.Eq{"sender_id": userID}, sq.Eq{"receiver_id": userID}}).
		OrderBy("sent_at", "id").
		ToSql()
}

// sessions

func (db *DB) buildInsertSessionQuery(s models.Session) (string, []any, error) {
	return db.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.ID, s.UserID, s.User.Email, s.User.FirstName, s.User.LastName, s.User.Phone, string(s.User.Role), s.CreatedAt.UTC(), s.ExpiresAt.UTC()).
		ToSql()
}

func (db *DB) buildGetSessionQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}

func (db *DB) buildDeleteSessionQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}

func (db *DB) buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
}
