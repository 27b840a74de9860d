package mailpost_test

import (
	"testing"

	"github.com/awalczak/mailpost"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mailpost.Errorf(mailpost.ENOTFOUND, "post %q not found", "test")

	assert.Equal(t, mailpost.ENOTFOUND, mailpost.ErrorCode(err))
	assert.Equal(t, "post \"test\" not found", mailpost.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mailpost.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mailpost.ErrorMessage(nil))
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid post", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{
			Author:   "Jane Doe",
			Content:  "Just finished reading this amazing novel!",
			Category: mailpost.CategoryGroup,
		}

		assert.NoError(t, post.Validate())
	})

	t.Run("missing author", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{Content: "text", Category: mailpost.CategoryPost}

		err := post.Validate()
		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{Author: "Jane Doe", Category: mailpost.CategoryPost}

		err := post.Validate()
		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})
}
