package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/emojisnap/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestRanking(t *testing.T) {
	convey.Convey("Given a Ranking", t, func() {
		r := model.Ranking{
			Char:  "😀",
			ID:    "grinning_face",
			Name:  "Grinning Face",
			Score: json.Number("1523.4"),
		}

		convey.Convey("When converting the score", func() {
			f, err := r.ScoreFloat()

			convey.Convey("Then it should keep the value", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(f, convey.ShouldEqual, 1523.4)
			})
		})

		convey.Convey("When the score token is large", func() {
			r.Score = json.Number("123456789012345678901234567890")
			f, err := r.ScoreFloat()

			convey.Convey("Then the float is approximate but the token is untouched", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(f, convey.ShouldBeGreaterThan, 1e29)
				convey.So(r.Score.String(), convey.ShouldEqual, "123456789012345678901234567890")
			})
		})

		convey.Convey("When the score is empty", func() {
			r.Score = ""
			_, err := r.ScoreFloat()

			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
