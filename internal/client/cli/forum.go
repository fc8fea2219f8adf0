package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"eduforum/internal/client/api"
	"eduforum/internal/client/authz"
	"eduforum/internal/client/guard"
)

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.forum.ListCategories(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, c := range categories {
		printlnFn(fmt.Sprintf("%s  %s — %s", c.ID, c.Name, c.Description))
	}
	return nil
}

func (a *App) NewCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	category, err := a.forum.CreateCategory(ctx, name, description)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created category", category.ID)
	return nil
}

func (a *App) Topics(ctx context.Context, categoryID string) error {
	topics, err := a.forum.ListTopics(ctx, categoryID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, t := range topics {
		printlnFn(fmt.Sprintf("%s  %s (by %s, %s)", t.ID, t.Title, t.Author.Username, t.CreatedAt.Format(time.RFC3339)))
	}
	return nil
}

func (a *App) NewTopic(ctx context.Context, categoryID string) error {
	title, err := getSimpleText(a.reader, "Topic title", os.Stdout)
	if err != nil {
		return err
	}

	topic, err := a.forum.CreateTopic(ctx, categoryID, title)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created topic", topic.ID)
	return nil
}

// DeleteTopic removes a topic. There is no single-topic fetch endpoint, so
// the ownership check happens server-side; a 403 comes back as an APIError.
func (a *App) DeleteTopic(ctx context.Context, topicID string) error {
	if err := a.forum.DeleteTopic(ctx, topicID); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted topic", topicID)
	return nil
}

func (a *App) Posts(ctx context.Context, topicID string) error {
	posts, err := a.forum.ListPosts(ctx, topicID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, p := range posts {
		printlnFn(fmt.Sprintf("%s  %s: %s", p.ID, p.Author.Username, p.Body))
	}
	return nil
}

func (a *App) NewPost(ctx context.Context, topicID string) error {
	body, err := getMultiline(a.reader, "Post body", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.forum.CreatePost(ctx, topicID, body)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Created post", post.ID)
	return nil
}

func (a *App) Show(ctx context.Context, postID string) error {
	post, err := a.forum.GetPost(ctx, postID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.printPost(post)
	return nil
}

func (a *App) printPost(p *api.Post) {
	printlnFn(fmt.Sprintf("Post %s by %s (%s)", p.ID, p.Author.Username, p.CreatedAt.Format(time.RFC3339)))
	if !p.UpdatedAt.IsZero() {
		printlnFn("Edited:", p.UpdatedAt.Format(time.RFC3339))
	}
	printlnFn(p.Body)
}

// Edit rewrites a post body. The edit is gated locally: only the author may
// edit, and only within the configured window after creation. The server
// enforces the same rules; the local check just gives an immediate answer.
func (a *App) Edit(ctx context.Context, postID string) error {
	post, err := a.forum.GetPost(ctx, postID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if msg := a.policy.EditRestrictionMessage(a.currentUser(), post.Content(), a.config.EditWindowMinutes); msg != "" {
		printlnFn(msg)
		return nil
	}

	body, err := getMultiline(a.reader, "New post body", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.forum.UpdatePost(ctx, postID, body)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated post", updated.ID)
	return nil
}

// Delete removes a post: the author may delete their own, teachers and
// admins may delete anyone's.
func (a *App) Delete(ctx context.Context, postID string) error {
	post, err := a.forum.GetPost(ctx, postID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if !a.policy.CanDelete(a.currentUser(), post.Content()) {
		printlnFn("You are not allowed to delete this content.")
		return nil
	}

	if err := a.forum.DeletePost(ctx, postID); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted post", postID)
	return nil
}

// Users lists all registered users. The route is admin-only; the guard
// decides before any request goes out.
func (a *App) Users(ctx context.Context) error {
	switch d := guard.RequireRole(a.state.Snapshot(), authz.RoleAdmin, "/users"); d.Kind {
	case guard.DecisionLoading:
		printlnFn("Session still loading, try again.")
		return nil
	case guard.DecisionRedirectLogin:
		printlnFn("You must be logged in. Use 'login' first.")
		return nil
	case guard.DecisionRedirectUnauthorized:
		printlnFn("This command requires the admin role.")
		return nil
	}

	users, err := a.forum.ListUsers(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %s (%s)", u.ID, u.Username, u.Role))
	}
	return nil
}
