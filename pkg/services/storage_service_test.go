package services

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"video-catalog/internal/storagetest"
)

func TestUploadCatalog(t *testing.T) {
	Convey("UploadCatalog", t, func() {
		srv := storagetest.NewServer(t)
		ctx := context.Background()

		Convey("Should store JSON under the catalogs prefix", func() {
			data, err := EncodeCatalog(NewGenerator(mustVariant("streaming"), 4).Catalog(1))
			So(err, ShouldBeNil)

			object := ObjectName("out/streaming_data.json")
			So(UploadCatalog(ctx, "catalog-bucket", object, data), ShouldBeNil)

			objects := srv.Objects()
			So(len(objects), ShouldEqual, 1)
			So(objects[0].Bucket, ShouldEqual, "catalog-bucket")
			So(objects[0].Name, ShouldEqual, "catalogs/streaming_data.json")
			So(objects[0].ContentType, ShouldEqual, "application/json")
			So(objects[0].CacheControl, ShouldEqual, "no-cache")
			So(string(objects[0].Data), ShouldEqual, string(data))
		})

		Convey("Should return the storage error", func() {
			srv.Deny("locked-bucket")
			err := UploadCatalog(ctx, "locked-bucket", "catalogs/videos.json", []byte(`{"playlists": []}`))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "catalogs/videos.json")
			So(srv.Objects(), ShouldBeEmpty)
		})
	})
}

func TestListUploads(t *testing.T) {
	Convey("ListUploads", t, func() {
		srv := storagetest.NewServer(t)
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		srv.Add(storagetest.Object{Bucket: "catalog-bucket", Name: "catalogs/old.json", Data: []byte("{}"), Updated: base})
		srv.Add(storagetest.Object{Bucket: "catalog-bucket", Name: "catalogs/new.json", Data: []byte("{ }"), Updated: base.Add(48 * time.Hour)})
		srv.Add(storagetest.Object{Bucket: "catalog-bucket", Name: "catalogs/mid.json", Data: []byte("{}"), Updated: base.Add(time.Hour)})
		srv.Add(storagetest.Object{Bucket: "catalog-bucket", Name: "catalogs/readme.txt", Updated: base.Add(72 * time.Hour)})
		srv.Add(storagetest.Object{Bucket: "catalog-bucket", Name: "exports/stray.json", Updated: base})
		srv.Add(storagetest.Object{Bucket: "other-bucket", Name: "catalogs/elsewhere.json", Updated: base})

		uploads, err := ListUploads(context.Background(), "catalog-bucket")
		So(err, ShouldBeNil)
		So(srv.Prefixes(), ShouldResemble, []string{UploadPrefix})

		names := make([]string, 0, len(uploads))
		for _, u := range uploads {
			names = append(names, u.Name)
		}
		So(names, ShouldResemble, []string{"catalogs/new.json", "catalogs/mid.json", "catalogs/old.json"})
		So(uploads[0].Size, ShouldEqual, int64(3))
		So(uploads[0].Updated.Equal(base.Add(48*time.Hour)), ShouldBeTrue)

		Convey("Should return an empty list for an empty bucket", func() {
			uploads, err := ListUploads(context.Background(), "empty-bucket")
			So(err, ShouldBeNil)
			So(uploads, ShouldNotBeNil)
			So(uploads, ShouldBeEmpty)
		})

		Convey("Should wrap listing errors", func() {
			srv.Deny("catalog-bucket")
			_, err := ListUploads(context.Background(), "catalog-bucket")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "list objects")
		})
	})
}

func TestObjectName(t *testing.T) {
	Convey("ObjectName", t, func() {
		So(ObjectName("streaming_data.json"), ShouldEqual, "catalogs/streaming_data.json")
		So(ObjectName("/tmp/out/videos.json"), ShouldEqual, "catalogs/videos.json")
		So(ObjectName(`C:\out\videos.json`), ShouldEqual, "catalogs/videos.json")
	})
}

func TestFormatSize(t *testing.T) {
	Convey("FormatSize", t, func() {
		So(FormatSize(512), ShouldEqual, "512 B")
		So(FormatSize(2048), ShouldEqual, "2.00 KB")
		So(FormatSize(3*1024*1024), ShouldEqual, "3.00 MB")
		So(FormatSize(5*1024*1024*1024), ShouldEqual, "5.00 GB")
	})
}
