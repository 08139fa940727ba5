package onesystem

import (
	"encoding/json"
	"testing"
)

func TestFlexIntDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		valid bool
	}{
		{`7`, 7, true},
		{`"7"`, 7, true},
		{`"  42 "`, 42, true},
		{`123.0`, 123, true},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"abc"`, 0, false},
		{`3.5`, 0, false},
	}
	for _, tt := range tests {
		var f FlexInt
		if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tt.input, err)
			continue
		}
		if f.Valid != tt.valid || f.Int != tt.want {
			t.Errorf("Unmarshal(%s) = {%d %v}, want {%d %v}", tt.input, f.Int, f.Valid, tt.want, tt.valid)
		}
	}
}

func TestFlexFloatDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		valid bool
	}{
		{`2.5`, 2.5, true},
		{`"2.5"`, 2.5, true},
		{`3`, 3, true},
		{`null`, 0, false},
		{`"x"`, 0, false},
	}
	for _, tt := range tests {
		var f FlexFloat
		if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tt.input, err)
			continue
		}
		if f.Valid != tt.valid || f.Float != tt.want {
			t.Errorf("Unmarshal(%s) = {%v %v}, want {%v %v}", tt.input, f.Float, f.Valid, tt.want, tt.valid)
		}
	}
}

func TestClassRecordDecoding(t *testing.T) {
	raw := `{
		"id": "360001",
		"code": "CS10102",
		"courseCode": "CS101",
		"newCourseCode": "CS900",
		"name": "程序设计",
		"credits": "3.0",
		"courseLabelId": 5,
		"startWeek": 1,
		"endWeek": 17,
		"teacherList": [{"id": 9001, "teacherCode": "T1", "teacherName": "张三"}],
		"majorList": ["2025(03074 土木工程(国际班))"],
		"arrangeInfo": "张三(T1) 星期一3-4节 [1-16周] 北楼101"
	}`
	var record ClassRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !record.ID.Valid || record.ID.Int != 360001 {
		t.Errorf("ID = %+v, want 360001", record.ID)
	}
	if !record.Credits.Valid || record.Credits.Float != 3.0 {
		t.Errorf("Credits = %+v, want 3.0", record.Credits)
	}
	if len(record.TeacherList) != 1 || record.TeacherList[0].TeacherName != "张三" {
		t.Errorf("TeacherList = %+v", record.TeacherList)
	}
	if len(record.MajorList) != 1 {
		t.Errorf("MajorList = %+v", record.MajorList)
	}
}

func TestPtrHelpers(t *testing.T) {
	if (FlexInt{}).Ptr() != nil {
		t.Error("invalid FlexInt should yield nil pointer")
	}
	if p := (FlexInt{Int: 9, Valid: true}).Ptr(); p == nil || *p != 9 {
		t.Errorf("Ptr() = %v, want 9", p)
	}
	if (FlexFloat{}).Ptr() != nil {
		t.Error("invalid FlexFloat should yield nil pointer")
	}
	if p := (FlexFloat{Float: 1.5, Valid: true}).Ptr(); p == nil || *p != 1.5 {
		t.Errorf("Ptr() = %v, want 1.5", p)
	}
}
