// Package testutil provides an in-memory implementation of the repository
// interfaces for service tests. It mirrors the store's semantics where they
// matter to the subsystem: set-union tag updates, atomic counter increments
// and the unique (post_id, user_id) like index.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore holds every collection behind one mutex so concurrent operations
// in tests behave like single-document atomic updates do in the real store.
type MemStore struct {
	mu           sync.Mutex
	categories   map[primitive.ObjectID]models.Category
	tags         map[primitive.ObjectID]models.Tag
	posts        map[primitive.ObjectID]models.Post
	comments     map[primitive.ObjectID]models.Comment
	users        map[primitive.ObjectID]models.User
	likes        map[string]models.Like // keyed post_id:user_id, the unique index
	associations map[primitive.ObjectID]models.Association
}

func NewMemStore() *MemStore {
	return &MemStore{
		categories:   make(map[primitive.ObjectID]models.Category),
		tags:         make(map[primitive.ObjectID]models.Tag),
		posts:        make(map[primitive.ObjectID]models.Post),
		comments:     make(map[primitive.ObjectID]models.Comment),
		users:        make(map[primitive.ObjectID]models.User),
		likes:        make(map[string]models.Like),
		associations: make(map[primitive.ObjectID]models.Association),
	}
}

func likeKey(postID, userID primitive.ObjectID) string {
	return postID.Hex() + ":" + userID.Hex()
}

func copyPost(p models.Post) models.Post {
	out := p
	out.TagsID = append([]primitive.ObjectID{}, p.TagsID...)
	return out
}

func (s *MemStore) Categories() repository.CategoryRepository     { return &memCategoryRepo{s} }
func (s *MemStore) Tags() repository.TagRepository                 { return &memTagRepo{s} }
func (s *MemStore) Posts() repository.PostRepository               { return &memPostRepo{s} }
func (s *MemStore) Comments() repository.CommentRepository         { return &memCommentRepo{s} }
func (s *MemStore) Users() repository.UserRepository               { return &memUserRepo{s} }
func (s *MemStore) Likes() repository.LikeRepository               { return &memLikeRepo{s} }
func (s *MemStore) Associations() repository.AssociationRepository { return &memAssociationRepo{s} }

// ---- categories ----

type memCategoryRepo struct{ s *MemStore }

func (r *memCategoryRepo) Insert(_ context.Context, in models.CategoryInput) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	category := models.Category{Id: primitive.NewObjectID(), Name: in.Name, Description: in.Description}
	r.s.categories[category.Id] = category
	return &category, nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	category, ok := r.s.categories[id]
	if !ok {
		return nil, models.NewNotFoundError("category", id.Hex())
	}
	return &category, nil
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, category := range r.s.categories {
		if strings.EqualFold(category.Name, name) {
			c := category
			return &c, nil
		}
	}
	return nil, models.NewNotFoundError("category", name)
}

func (r *memCategoryRepo) List(_ context.Context, skip, limit int64) ([]models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id.Hex() < all[j].Id.Hex() })
	return page(all, skip, limit), nil
}

func (r *memCategoryRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.categories)), nil
}

func (r *memCategoryRepo) Update(_ context.Context, id primitive.ObjectID, in models.CategoryInput) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	category, ok := r.s.categories[id]
	if !ok {
		return nil, models.NewNotFoundError("category", id.Hex())
	}
	category.Name = in.Name
	category.Description = in.Description
	r.s.categories[id] = category
	return &category, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return models.NewNotFoundError("category", id.Hex())
	}
	delete(r.s.categories, id)
	return nil
}

// ---- tags ----

type memTagRepo struct{ s *MemStore }

func (r *memTagRepo) Insert(_ context.Context, in models.TagInput) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tag := models.Tag{Id: primitive.NewObjectID(), Name: in.Name}
	r.s.tags[tag.Id] = tag
	return &tag, nil
}

func (r *memTagRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tag, ok := r.s.tags[id]
	if !ok {
		return nil, models.NewNotFoundError("tag", id.Hex())
	}
	return &tag, nil
}

func (r *memTagRepo) FindByName(_ context.Context, name string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tag := range r.s.tags {
		if strings.EqualFold(tag.Name, name) {
			t := tag
			return &t, nil
		}
	}
	return nil, models.NewNotFoundError("tag", name)
}

func (r *memTagRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tags := []models.Tag{}
	for _, id := range ids {
		if tag, ok := r.s.tags[id]; ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (r *memTagRepo) List(_ context.Context, skip, limit int64) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.Tag, 0, len(r.s.tags))
	for _, tag := range r.s.tags {
		all = append(all, tag)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id.Hex() < all[j].Id.Hex() })
	return page(all, skip, limit), nil
}

func (r *memTagRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.tags)), nil
}

func (r *memTagRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tags[id]; !ok {
		return models.NewNotFoundError("tag", id.Hex())
	}
	delete(r.s.tags, id)
	return nil
}

// ---- posts ----

type memPostRepo struct{ s *MemStore }

func (r *memPostRepo) Insert(_ context.Context, in models.PostInput) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post := models.Post{
		Id:              primitive.NewObjectID(),
		Title:           in.Title,
		Content:         in.Content,
		Author:          in.Author,
		PublicationDate: in.PublicationDate,
		CategoryID:      in.CategoryID,
		TagsID:          append([]primitive.ObjectID{}, in.TagsID...),
	}
	r.s.posts[post.Id] = post
	out := copyPost(post)
	return &out, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("post", id.Hex())
	}
	out := copyPost(post)
	return &out, nil
}

func (r *memPostRepo) Update(_ context.Context, id primitive.ObjectID, in models.PostInput) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("post", id.Hex())
	}
	post.Title = in.Title
	post.Content = in.Content
	post.Author = in.Author
	post.PublicationDate = in.PublicationDate
	post.CategoryID = in.CategoryID
	post.TagsID = append([]primitive.ObjectID{}, in.TagsID...)
	r.s.posts[id] = post
	out := copyPost(post)
	return &out, nil
}

func (r *memPostRepo) matching(opts repository.PostListOptions) []models.Post {
	all := []models.Post{}
	for _, post := range r.s.posts {
		if opts.PublishedOn != nil {
			day := opts.PublishedOn.Truncate(24 * time.Hour)
			if post.PublicationDate.Before(day) || !post.PublicationDate.Before(day.Add(24*time.Hour)) {
				continue
			}
		}
		all = append(all, copyPost(post))
	}
	return all
}

func (r *memPostRepo) List(_ context.Context, opts repository.PostListOptions) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.matching(opts)

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "likes"
	}
	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "publication_date":
			less = all[i].PublicationDate.Before(all[j].PublicationDate)
		default:
			less = all[i].Likes < all[j].Likes
		}
		if opts.Ascending {
			return less
		}
		return !less
	})
	return page(all, opts.Skip, opts.Limit), nil
}

func (r *memPostRepo) Count(_ context.Context, opts repository.PostListOptions) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.matching(opts))), nil
}

func (r *memPostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return models.NewNotFoundError("post", id.Hex())
	}
	delete(r.s.posts, id)
	return nil
}

func (r *memPostRepo) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.s.posts {
		if post.CategoryID != nil && *post.CategoryID == categoryID {
			posts = append(posts, copyPost(post))
		}
	}
	return posts, nil
}

func (r *memPostRepo) FindByTag(_ context.Context, tagID primitive.ObjectID) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.s.posts {
		for _, t := range post.TagsID {
			if t == tagID {
				posts = append(posts, copyPost(post))
				break
			}
		}
	}
	return posts, nil
}

func (r *memPostRepo) SearchByTitle(_ context.Context, title string) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.s.posts {
		if strings.Contains(strings.ToLower(post.Title), strings.ToLower(title)) {
			posts = append(posts, copyPost(post))
		}
	}
	return posts, nil
}

func (r *memPostRepo) AddTag(_ context.Context, postID, tagID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[postID]
	if !ok {
		return nil
	}
	for _, t := range post.TagsID {
		if t == tagID {
			return nil // set union: already present
		}
	}
	post.TagsID = append(post.TagsID, tagID)
	r.s.posts[postID] = post
	return nil
}

func (r *memPostRepo) PullTag(_ context.Context, postID, tagID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[postID]
	if !ok {
		return nil
	}
	post.TagsID = removeID(post.TagsID, tagID)
	r.s.posts[postID] = post
	return nil
}

func (r *memPostRepo) PullTagFromAll(_ context.Context, tagID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var modified int64
	for id, post := range r.s.posts {
		trimmed := removeID(post.TagsID, tagID)
		if len(trimmed) != len(post.TagsID) {
			post.TagsID = trimmed
			r.s.posts[id] = post
			modified++
		}
	}
	return modified, nil
}

func (r *memPostRepo) ClearCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var modified int64
	for id, post := range r.s.posts {
		if post.CategoryID != nil && *post.CategoryID == categoryID {
			post.CategoryID = nil
			r.s.posts[id] = post
			modified++
		}
	}
	return modified, nil
}

func (r *memPostRepo) IncLikes(_ context.Context, postID primitive.ObjectID, delta int64) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[postID]
	if !ok {
		return nil, models.NewNotFoundError("post", postID.Hex())
	}
	post.Likes += delta
	r.s.posts[postID] = post
	out := copyPost(post)
	return &out, nil
}

// MostPopularCategory counts categorized posts per category. Ties resolve to
// the lexicographically smallest category id so tests stay deterministic.
func (r *memPostRepo) MostPopularCategory(_ context.Context) (*models.CategoryStat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[primitive.ObjectID]int64{}
	for _, post := range r.s.posts {
		if post.CategoryID != nil {
			counts[*post.CategoryID]++
		}
	}
	if len(counts) == 0 {
		return nil, nil
	}

	var topID primitive.ObjectID
	var topCount int64 = -1
	for id, count := range counts {
		if count > topCount || (count == topCount && id.Hex() < topID.Hex()) {
			topID, topCount = id, count
		}
	}

	category, ok := r.s.categories[topID]
	if !ok {
		// Top category was deleted out from under its posts; the $lookup
		// would drop the row.
		return nil, nil
	}
	return &models.CategoryStat{CategoryName: category.Name, PostCount: topCount}, nil
}

// ---- comments ----

type memCommentRepo struct{ s *MemStore }

func (r *memCommentRepo) Insert(_ context.Context, postID, userID primitive.ObjectID, content string) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment := models.Comment{
		Id:           primitive.NewObjectID(),
		PostID:       postID,
		UserID:       userID,
		Content:      content,
		CreationDate: time.Now(),
	}
	r.s.comments[comment.Id] = comment
	return &comment, nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, models.NewNotFoundError("comment", id.Hex())
	}
	return &comment, nil
}

func (r *memCommentRepo) FindByPost(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comments := []models.Comment{}
	for _, comment := range r.s.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) UpdateContent(_ context.Context, id primitive.ObjectID, content string) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, models.NewNotFoundError("comment", id.Hex())
	}
	comment.Content = content
	r.s.comments[id] = comment
	return &comment, nil
}

func (r *memCommentRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.comments)), nil
}

func (r *memCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return models.NewNotFoundError("comment", id.Hex())
	}
	delete(r.s.comments, id)
	return nil
}

func (r *memCommentRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, comment := range r.s.comments {
		if comment.PostID == postID {
			delete(r.s.comments, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memCommentRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, comment := range r.s.comments {
		if comment.UserID == userID {
			delete(r.s.comments, id)
			deleted++
		}
	}
	return deleted, nil
}

// ---- users ----

type memUserRepo struct{ s *MemStore }

func (r *memUserRepo) Insert(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user := models.User{
		Id:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		Password:     passwordHash,
		CreationDate: time.Now(),
	}
	r.s.users[user.Id] = user
	return &user, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("user", id.Hex())
	}
	return &user, nil
}

func (r *memUserRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email || user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("user", email)
}

func (r *memUserRepo) List(_ context.Context, skip, limit int64) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id.Hex() < all[j].Id.Hex() })
	return page(all, skip, limit), nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r *memUserRepo) Update(_ context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("user", id.Hex())
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		user.Password = *upd.Password
	}
	r.s.users[id] = user
	return &user, nil
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return models.NewNotFoundError("user", id.Hex())
	}
	delete(r.s.users, id)
	return nil
}

// ---- likes ----

type memLikeRepo struct{ s *MemStore }

func (r *memLikeRepo) Insert(_ context.Context, postID, userID primitive.ObjectID) (*models.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := likeKey(postID, userID)
	if _, exists := r.s.likes[key]; exists {
		return nil, models.NewDuplicateLikeError()
	}
	like := models.Like{
		Id:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.s.likes[key] = like
	return &like, nil
}

func (r *memLikeRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	likes := []models.Like{}
	for _, like := range r.s.likes {
		if like.UserID == userID {
			likes = append(likes, like)
		}
	}
	return likes, nil
}

func (r *memLikeRepo) Delete(_ context.Context, postID, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := likeKey(postID, userID)
	if _, ok := r.s.likes[key]; !ok {
		return models.NewNotFoundError("like", postID.Hex())
	}
	delete(r.s.likes, key)
	return nil
}

func (r *memLikeRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for key, like := range r.s.likes {
		if like.PostID == postID {
			delete(r.s.likes, key)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memLikeRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for key, like := range r.s.likes {
		if like.UserID == userID {
			delete(r.s.likes, key)
			deleted++
		}
	}
	return deleted, nil
}

// ---- associations ----

type memAssociationRepo struct{ s *MemStore }

func (r *memAssociationRepo) Insert(_ context.Context, postID, tagID primitive.ObjectID) (*models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	association := models.Association{Id: primitive.NewObjectID(), PostID: postID, TagID: tagID}
	r.s.associations[association.Id] = association
	return &association, nil
}

func (r *memAssociationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	association, ok := r.s.associations[id]
	if !ok {
		return nil, models.NewNotFoundError("association", id.Hex())
	}
	return &association, nil
}

func (r *memAssociationRepo) List(_ context.Context, skip, limit int64) ([]models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.Association, 0, len(r.s.associations))
	for _, association := range r.s.associations {
		all = append(all, association)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id.Hex() < all[j].Id.Hex() })
	return page(all, skip, limit), nil
}

func (r *memAssociationRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.associations)), nil
}

func (r *memAssociationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.associations[id]; !ok {
		return models.NewNotFoundError("association", id.Hex())
	}
	delete(r.s.associations, id)
	return nil
}

func (r *memAssociationRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, association := range r.s.associations {
		if association.PostID == postID {
			delete(r.s.associations, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memAssociationRepo) DeleteByTag(_ context.Context, tagID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, association := range r.s.associations {
		if association.TagID == tagID {
			delete(r.s.associations, id)
			deleted++
		}
	}
	return deleted, nil
}

// ---- helpers ----

func page[T any](all []T, skip, limit int64) []T {
	if skip >= int64(len(all)) {
		return []T{}
	}
	out := all[skip:]
	if limit > 0 && limit < int64(len(out)) {
		out = out[:limit]
	}
	return out
}

func removeID(ids []primitive.ObjectID, target primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
