package district

// provinces is ordered the way the search UI lists them.
var provinces = []Province{
	{
		ID: 1, Name: "서울특별시",
		Children: []District{
			{ID: -18, Name: "강남구"},
			{ID: 10, Name: "강동구"},
			{ID: 13, Name: "강북구"},
			{ID: 39, Name: "강서구"},
			{ID: -22, Name: "관악구"},
			{ID: -23, Name: "광진구"},
			{ID: 35, Name: "구로구"},
			{ID: 20, Name: "금천구"},
			{ID: 24, Name: "노원구"},
			{ID: -27, Name: "도봉구"},
			{ID: 37, Name: "동대문구"},
			{ID: -29, Name: "동작구"},
			{ID: 8, Name: "마포구"},
			{ID: 4, Name: "서대문구"},
			{ID: 22, Name: "서초구"},
			{ID: -33, Name: "성동구"},
			{ID: 2, Name: "성북구"},
			{ID: 90, Name: "송파구"},
			{ID: -36, Name: "양천구"},
			{ID: 18, Name: "영등포구"},
			{ID: 6, Name: "용산구"},
			{ID: -39, Name: "은평구"},
			{ID: 28, Name: "종로구"},
			{ID: 41, Name: "중구"},
			{ID: 30, Name: "중랑구"},
		},
	},
	{
		ID: 44, Name: "경기도",
		Children: []District{
			{ID: -43, Name: "수원시"},
			{ID: -44, Name: "성남시"},
			{ID: 53, Name: "고양시"},
			{ID: -46, Name: "용인시"},
			{ID: -47, Name: "부천시"},
			{ID: -48, Name: "안산시"},
			{ID: 45, Name: "안양시"},
			{ID: -50, Name: "남양주시"},
			{ID: -51, Name: "화성시"},
			{ID: -52, Name: "평택시"},
			{ID: -53, Name: "의정부시"},
			{ID: -54, Name: "시흥시"},
			{ID: 80, Name: "파주시"},
			{ID: -56, Name: "김포시"},
			{ID: -57, Name: "광명시"},
			{ID: -58, Name: "광주시"},
			{ID: -59, Name: "군포시"},
			{ID: -60, Name: "오산시"},
			{ID: -61, Name: "이천시"},
			{ID: -62, Name: "양주시"},
			{ID: -63, Name: "안성시"},
			{ID: -64, Name: "구리시"},
			{ID: -65, Name: "포천시"},
			{ID: -66, Name: "의왕시"},
			{ID: -67, Name: "하남시"},
			{ID: -68, Name: "여주시"},
			{ID: -69, Name: "양평군"},
			{ID: -70, Name: "동두천시"},
			{ID: -71, Name: "과천시"},
			{ID: -72, Name: "가평군"},
			{ID: -73, Name: "연천군"},
		},
	},
	{
		ID: 60, Name: "인천광역시",
		Children: []District{
			{ID: 61, Name: "중구"},
			{ID: -75, Name: "동구"},
			{ID: -76, Name: "미추홀구"},
			{ID: -77, Name: "연수구"},
			{ID: -78, Name: "남동구"},
			{ID: -79, Name: "부평구"},
			{ID: -80, Name: "계양구"},
			{ID: -81, Name: "서구"},
			{ID: -82, Name: "강화군"},
			{ID: -83, Name: "옹진군"},
		},
	},
	{
		ID: 50, Name: "부산광역시",
		Children: []District{
			{ID: -84, Name: "중구"},
			{ID: -85, Name: "서구"},
			{ID: -86, Name: "동구"},
			{ID: -87, Name: "영도구"},
			{ID: -88, Name: "부산진구"},
			{ID: -89, Name: "동래구"},
			{ID: -90, Name: "남구"},
			{ID: -91, Name: "북구"},
			{ID: 51, Name: "해운대구"},
			{ID: -93, Name: "사하구"},
			{ID: -94, Name: "금정구"},
			{ID: -95, Name: "강서구"},
			{ID: -96, Name: "연제구"},
			{ID: -97, Name: "수영구"},
			{ID: -98, Name: "사상구"},
			{ID: -99, Name: "기장군"},
		},
	},
	{
		ID: -5, Name: "대구광역시",
		Children: []District{
			{ID: -100, Name: "중구"},
			{ID: -101, Name: "동구"},
			{ID: -102, Name: "서구"},
			{ID: -103, Name: "남구"},
			{ID: -104, Name: "북구"},
			{ID: -105, Name: "수성구"},
			{ID: -106, Name: "달서구"},
			{ID: -107, Name: "달성군"},
		},
	},
	{
		ID: 65, Name: "대전광역시",
		Children: []District{
			{ID: -108, Name: "동구"},
			{ID: -109, Name: "중구"},
			{ID: -110, Name: "서구"},
			{ID: 66, Name: "유성구"},
			{ID: -112, Name: "대덕구"},
		},
	},
	{
		ID: -7, Name: "광주광역시",
		Children: []District{
			{ID: -113, Name: "동구"},
			{ID: -114, Name: "서구"},
			{ID: -115, Name: "남구"},
			{ID: -116, Name: "북구"},
			{ID: -117, Name: "광산구"},
		},
	},
	{
		ID: 77, Name: "울산광역시",
		Children: []District{
			{ID: -118, Name: "중구"},
			{ID: -119, Name: "남구"},
			{ID: -120, Name: "동구"},
			{ID: -121, Name: "북구"},
			{ID: 78, Name: "울주군"},
		},
	},
	{
		ID: -9, Name: "세종특별자치시",
		Children: []District{
			{ID: -123, Name: "세종시"},
		},
	},
	{
		ID: 71, Name: "강원특별자치도",
		Children: []District{
			{ID: -124, Name: "춘천시"},
			{ID: -125, Name: "원주시"},
			{ID: 72, Name: "강릉시"},
			{ID: -127, Name: "동해시"},
			{ID: -128, Name: "태백시"},
			{ID: -129, Name: "속초시"},
			{ID: -130, Name: "삼척시"},
		},
	},
	{
		ID: -11, Name: "충청북도",
		Children: []District{
			{ID: -131, Name: "청주시"},
			{ID: -132, Name: "충주시"},
			{ID: -133, Name: "제천시"},
		},
	},
	{
		ID: 86, Name: "충청남도",
		Children: []District{
			{ID: -134, Name: "천안시"},
			{ID: 87, Name: "공주시"},
			{ID: -136, Name: "보령시"},
			{ID: -137, Name: "아산시"},
			{ID: -138, Name: "서산시"},
			{ID: -139, Name: "논산시"},
			{ID: -140, Name: "계룡시"},
			{ID: -141, Name: "당진시"},
		},
	},
	{
		ID: 82, Name: "전북특별자치도",
		Children: []District{
			{ID: 83, Name: "전주시"},
			{ID: -143, Name: "군산시"},
			{ID: -144, Name: "익산시"},
			{ID: -145, Name: "정읍시"},
			{ID: -146, Name: "남원시"},
			{ID: -147, Name: "김제시"},
		},
	},
	{
		ID: -14, Name: "전라남도",
		Children: []District{
			{ID: -148, Name: "목포시"},
			{ID: -149, Name: "여수시"},
			{ID: -150, Name: "순천시"},
			{ID: -151, Name: "나주시"},
			{ID: -152, Name: "광양시"},
		},
	},
	{
		ID: 56, Name: "경상북도",
		Children: []District{
			{ID: -153, Name: "포항시"},
			{ID: 57, Name: "경주시"},
			{ID: -155, Name: "김천시"},
			{ID: -156, Name: "안동시"},
			{ID: -157, Name: "구미시"},
			{ID: 93, Name: "영주시"},
			{ID: -159, Name: "영천시"},
			{ID: -160, Name: "상주시"},
			{ID: -161, Name: "문경시"},
			{ID: -162, Name: "경산시"},
		},
	},
	{
		ID: -16, Name: "경상남도",
		Children: []District{
			{ID: -163, Name: "창원시"},
			{ID: -164, Name: "진주시"},
			{ID: -165, Name: "통영시"},
			{ID: -166, Name: "사천시"},
			{ID: -167, Name: "김해시"},
			{ID: -168, Name: "밀양시"},
			{ID: -169, Name: "거제시"},
			{ID: -170, Name: "양산시"},
		},
	},
	{
		ID: 74, Name: "제주특별자치도",
		Children: []District{
			{ID: -171, Name: "제주시"},
			{ID: 75, Name: "서귀포시"},
		},
	},
}
