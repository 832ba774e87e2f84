package keygen

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mock_keygen "github.com/vkupriya/go-rsakeygen/internal/keygen/mocks"
	"github.com/vkupriya/go-rsakeygen/internal/rsakey"
)

type bigEq struct {
	v int64
}

func (b bigEq) Matches(x interface{}) bool {
	i, ok := x.(*big.Int)
	return ok && i.Cmp(big.NewInt(b.v)) == 0
}

func (b bigEq) String() string {
	return fmt.Sprintf("is big.Int %d", b.v)
}

func textbookKeys() *rsakey.Keys {
	return &rsakey.Keys{
		Public:  rsakey.KeyPair{Exponent: big.NewInt(17), Modulus: big.NewInt(3233)},
		Private: rsakey.KeyPair{Exponent: big.NewInt(2753), Modulus: big.NewInt(3233)},
		Totient: big.NewInt(3120),
	}
}

func testConfig() *Config {
	return &Config{
		Logger:  zap.NewNop(),
		Message: big.NewInt(rsakey.TestMessage),
	}
}

const keysOutput = "The generated public key pair is: (17, 3233)\n" +
	"The generated private key pair is: (2753, 3233)\n"

func TestSessionDialogue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		verified bool
		verify   bool
		want     string
	}{
		{
			name:     "test keys: success",
			input:    "61\n53\ny\n",
			verify:   true,
			verified: true,
			want:     promptP + promptQ + keysOutput + promptTest + "\n" + verifySuccess + "\n",
		},
		{
			name:     "test keys: failure",
			input:    "61\n53\ny\n",
			verify:   true,
			verified: false,
			want:     promptP + promptQ + keysOutput + promptTest + "\n" + verifyFailure + "\n",
		},
		{
			name:  "decline test",
			input: "61\n53\nn\n",
			want:  promptP + promptQ + keysOutput + promptTest + "\n",
		},
		{
			name:  "input ends at test question",
			input: "61\n53\n",
			want:  promptP + promptQ + keysOutput + promptTest + "\n",
		},
		{
			name:  "reprompt on negative, garbage and duplicate",
			input: "-7\nabc\n\n61\n61\n-53\n53 extra\nn\n",
			want: promptP + retryP + "\n" +
				promptP + retryP + "\n" +
				promptP + retryP + "\n" +
				promptP + promptQ + retryQ + "\n" +
				promptQ + retryQ + "\n" +
				promptQ + keysOutput + promptTest + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			keys := textbookKeys()
			g := mock_keygen.NewMockKeyGenerator(ctrl)
			g.EXPECT().Generate(bigEq{61}, bigEq{53}).Return(keys, nil)
			if tt.verify {
				g.EXPECT().Verify(keys).Return(tt.verified)
			}

			var out bytes.Buffer
			s := NewSession(testConfig(), g, strings.NewReader(tt.input), &out)
			got, err := s.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, keys, got)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSessionZeroIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := mock_keygen.NewMockKeyGenerator(ctrl)
	g.EXPECT().Generate(bigEq{0}, bigEq{13}).Return(nil, rsakey.ErrInvalidArgument)

	var out bytes.Buffer
	s := NewSession(testConfig(), g, strings.NewReader("0\n13\n"), &out)
	_, err := s.Run(context.Background())
	assert.ErrorIs(t, err, rsakey.ErrInvalidArgument)
}

func TestSessionPresetPrimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := textbookKeys()
	g := mock_keygen.NewMockKeyGenerator(ctrl)
	g.EXPECT().Generate(bigEq{61}, bigEq{53}).Return(keys, nil)
	g.EXPECT().Verify(keys).Return(true)

	c := testConfig()
	c.P = big.NewInt(61)
	c.Q = big.NewInt(53)
	c.TestKeys = true

	var out bytes.Buffer
	_, err := NewSession(c, g, strings.NewReader(""), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, keysOutput+verifySuccess+"\n", out.String())
}

func TestSessionInvalidPresets(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
	}{
		{name: "negative p", p: -5, q: 11},
		{name: "negative q", p: 5, q: -11},
		{name: "equal", p: 5, q: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := testConfig()
			c.P = big.NewInt(tt.p)
			c.Q = big.NewInt(tt.q)

			s := NewSession(c, mock_keygen.NewMockKeyGenerator(ctrl), strings.NewReader(""), &bytes.Buffer{})
			_, err := s.Run(context.Background())
			assert.ErrorIs(t, err, ErrInvalidPrime)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	t.Run("input closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := NewSession(testConfig(), mock_keygen.NewMockKeyGenerator(ctrl), strings.NewReader("61\n"), &bytes.Buffer{})
		_, err := s.Run(context.Background())
		assert.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("no coprime is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		g := mock_keygen.NewMockKeyGenerator(ctrl)
		g.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("wrapped: %w", rsakey.ErrNoCoprime))

		var out bytes.Buffer
		_, err := NewSession(testConfig(), g, strings.NewReader("2\n3\n"), &out).Run(context.Background())
		assert.ErrorIs(t, err, rsakey.ErrNoCoprime)
		assert.NotContains(t, out.String(), "key pair is")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := NewSession(testConfig(), mock_keygen.NewMockKeyGenerator(ctrl), strings.NewReader("61\n53\n"), &bytes.Buffer{})
		_, err := s.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSessionWithGenerator(t *testing.T) {
	c := testConfig()
	g := rsakey.NewGenerator(rsakey.SeededReader(21), c.Message)

	var out bytes.Buffer
	keys, err := NewSession(c, g, strings.NewReader("5\n11\ny\n"), &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(55), keys.Public.Modulus.Int64())
	assert.Contains(t, rsakey.Coprimes(40), keys.Public.Exponent.Int64())
	assert.True(t, strings.HasSuffix(out.String(), verifySuccess+"\n"))
}

func TestStart(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	err := Start(context.Background(), []string{"-p", "61", "-q", "53", "-t", "-s", "4"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The generated public key pair is: (")
	assert.Contains(t, out.String(), ", 3233)")
	assert.Contains(t, out.String(), verifySuccess)

	err = Start(context.Background(), []string{"-p", "2", "-q", "3"}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, rsakey.ErrNoCoprime)
}
