package symdex_test

import (
	"testing"

	"github.com/fwojciec/symdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollisionPolicy(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"overwrite", "suffix", "hash"} {
		p, err := symdex.ParseCollisionPolicy(s)
		require.NoError(t, err)
		assert.Equal(t, symdex.CollisionPolicy(s), p)
	}

	p, err := symdex.ParseCollisionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, symdex.CollisionOverwrite, p)

	_, err = symdex.ParseCollisionPolicy("rename")
	require.Error(t, err)
	assert.Equal(t, symdex.EINVALID, symdex.ErrorCode(err))
}
