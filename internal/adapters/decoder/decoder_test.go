package decoder_test

import (
	"errors"
	"testing"

	"github.com/okian/emojisnap/internal/adapters/decoder"
	"github.com/okian/emojisnap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Given a well-formed rankings body", t, func() {
		body := []byte(`[
			{"char":"😀","id":"grinning_face","name":"Grinning Face","score":1523.4},
			{"char":"❤️","id":"heart","name":"Heavy \"Black\" Heart","score":0,"extra":[1,2]},
			{"char":"👨‍👩‍👧","id":"family","name":"Back\\slash","score":-1}
		]`)

		rankings, err := decoder.Decode(body)

		Convey("Then every record is decoded in source order", func() {
			So(err, ShouldBeNil)
			So(rankings, ShouldHaveLength, 3)
			So(rankings[0], ShouldResemble, model.Ranking{Char: "😀", ID: "grinning_face", Name: "Grinning Face", Score: "1523.4"})
			So(rankings[1].ID, ShouldEqual, "heart")
			So(rankings[1].Name, ShouldEqual, `Heavy "Black" Heart`)
			So(rankings[1].Score.String(), ShouldEqual, "0")
			So(rankings[2].Char, ShouldEqual, "👨‍👩‍👧")
			So(rankings[2].Name, ShouldEqual, `Back\slash`)
			So(rankings[2].Score.String(), ShouldEqual, "-1")
		})
	})

	Convey("Given an empty array", t, func() {
		rankings, err := decoder.Decode([]byte(" [ ] \n"))

		Convey("Then the result is an empty, non-nil sequence", func() {
			So(err, ShouldBeNil)
			So(rankings, ShouldNotBeNil)
			So(rankings, ShouldBeEmpty)
		})
	})

	Convey("Given score tokens of several shapes", t, func() {
		for _, tok := range []string{"0", "-1", "12.5", "1e3", "-0.000001", "123456789012345678901234567890"} {
			rankings, err := decoder.Decode([]byte(`[{"char":"x","id":"x","name":"x","score":` + tok + `}]`))

			So(err, ShouldBeNil)
			So(rankings[0].Score.String(), ShouldEqual, tok)
		}
	})
}

func TestDecodeMalformed(t *testing.T) {
	Convey("Given bodies that do not match the schema", t, func() {
		cases := []struct {
			name   string
			body   string
			index  int
			field  string
			substr string
		}{
			{"empty body", ``, -1, "", "top-level value is empty"},
			{"not json", `<html>oops</html>`, -1, "", "top-level value is invalid"},
			{"object at top level", `{"char":"😀","id":"x","name":"x","score":1}`, -1, "", "top-level value is object, want array"},
			{"string at top level", `"rankings"`, -1, "", "top-level value is string"},
			{"truncated array", `[{"char":"a","id":"a","name":"a","score":1}`, -1, "", ""},
			{"trailing data", `[] []`, -1, "", "unexpected data after array"},
			{"broken element", `[{"char": }]`, 0, "", ""},
			{"element is array", `[["a","b"]]`, 0, "", "element is array, want object"},
			{"element is null", `[null]`, 0, "", "element is null, want object"},
			{"missing char", `[{"id":"a","name":"a","score":1}]`, 0, "char", "missing"},
			{"missing score", `[{"char":"a","id":"a","name":"a"}]`, 0, "score", "missing"},
			{"score is string", `[{"char":"a","id":"a","name":"a","score":"12"}]`, 0, "score", "is string, want number"},
			{"score is null", `[{"char":"a","id":"a","name":"a","score":null}]`, 0, "score", "is null, want number"},
			{"id is number", `[{"char":"a","id":7,"name":"a","score":1}]`, 0, "id", "is number, want string"},
			{"name is bool", `[{"char":"a","id":"a","name":true,"score":1}]`, 0, "name", "is boolean, want string"},
			{"second element bad", `[{"char":"a","id":"a","name":"a","score":1},{"char":"b","id":"b","name":"b","score":{}}]`, 1, "score", "is object, want number"},
		}

		for _, tc := range cases {
			rankings, err := decoder.Decode([]byte(tc.body))

			So(rankings, ShouldBeNil)
			So(errors.Is(err, decoder.ErrMalformedResponse), ShouldBeTrue)

			var me *decoder.MalformedError
			So(errors.As(err, &me), ShouldBeTrue)
			So(me.Index, ShouldEqual, tc.index)
			So(me.Field, ShouldEqual, tc.field)
			if tc.substr != "" {
				So(err.Error(), ShouldContainSubstring, tc.substr)
			}
		}
	})

	Convey("Given a bad element whose id is readable", t, func() {
		_, err := decoder.Decode([]byte(`[{"char":"a","id":"a","name":"a","score":1},{"char":"b","id":"smile","name":"b"}]`))

		Convey("Then the message names index, id and field", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, `malformed response: element 1 (id "smile"): field "score": missing`)
		})
	})
}
