// Command mediaorg sorts photos and videos into a dated library.
//
// Files are moved into {destination}/{YYYY}/{YYYY}_{MM}/ and renamed
// {YYYY}_{MM}_{DD}_{folders}_{name}{ext}, where the date comes from the
// embedded capture time when a photo has one and from filesystem timestamps
// otherwise. Run "mediaorg organize --what-if" first to preview the moves.
package main
